/*
Package api implements Folio's HTTP/JSON surface.

Routes:

	GET  /healthz                      process health
	GET  /metrics                      Prometheus metrics
	POST /api/v1/auth/login            issue a session token
	GET  /api/v1/auth/session          session state for the presented token
	GET  /api/v1/notification          consume the pending notification
	GET  /api/v1/content/{entity}      read an entity (public)
	PUT  /api/v1/content/{entity}      replace an entity (authenticated)
	POST /api/v1/auth/logout           tear the session down
	POST /api/v1/auth/password         rotate the admin secret
	POST /api/v1/auth/editing          toggle editing mode
	GET  /api/v1/snapshot              download a full backup
	POST /api/v1/snapshot              restore a backup

Writes are full replacements; partial updates are composed client-side.
Sessions are bearer tokens signed with a per-process key, so restarting
the server ends every session.
*/
package api
