/*
Darasa is a small classroom demo server: signup/login, assignments, exams with mock scoring,
a class feed, a library wallet and file uploads, served next to a single-page app.

Classroom state lives in process memory and is lost on restart.

Binaries:
	apps/api    the HTTP API server
	apps/admin  a command line client of a running API server
*/
package darasa
