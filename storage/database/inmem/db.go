package inmemdb

import (
	"sync"

	"github.com/trezcool/darasa/core/classwork"
	"github.com/trezcool/darasa/core/feed"
	"github.com/trezcool/darasa/core/user"
)

type (
	// DB holds every table in process memory. Nothing is persisted.
	DB struct {
		user       *userTable
		assignment *listTable[classwork.Assignment]
		exam       *listTable[classwork.Exam]
		submission *listTable[classwork.Submission]
		post       *listTable[feed.Post]
		library    *listTable[string]
	}

	userTable struct {
		table map[string]*user.User
		mutex sync.RWMutex
	}

	// listTable is an append-only table keeping insertion order.
	listTable[T any] struct {
		rows  []T
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		assignment: new(listTable[classwork.Assignment]),
		exam:       new(listTable[classwork.Exam]),
		submission: new(listTable[classwork.Submission]),
		post:       new(listTable[feed.Post]),
		library:    new(listTable[string]),
	}
	return db, nil
}

// append adds row and returns a copy of all rows right after the append.
func (lt *listTable[T]) append(row T) []T {
	lt.mutex.Lock()
	defer lt.mutex.Unlock()
	lt.rows = append(lt.rows, row)
	return lt.copyRows()
}

// appendFunc appends newRow(len(rows)) under the same lock it reads the length with.
func (lt *listTable[T]) appendFunc(newRow func(n int) T) []T {
	lt.mutex.Lock()
	defer lt.mutex.Unlock()
	lt.rows = append(lt.rows, newRow(len(lt.rows)))
	return lt.copyRows()
}

func (lt *listTable[T]) all() []T {
	lt.mutex.RLock()
	defer lt.mutex.RUnlock()
	return lt.copyRows()
}

func (lt *listTable[T]) filter(keep func(T) bool) []T {
	lt.mutex.RLock()
	defer lt.mutex.RUnlock()
	rows := make([]T, 0, len(lt.rows))
	for _, row := range lt.rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// copyRows must be called with the mutex held.
func (lt *listTable[T]) copyRows() []T {
	rows := make([]T, len(lt.rows))
	copy(rows, lt.rows)
	return rows
}
