// Package session holds the per-process chat session state.
//
// # Overview
//
// A newsdesk process talks to the backend as one chat session. The session
// identifier is generated at startup and sent with every chat request so the
// backend can keep conversational memory. Whatever identifier the backend
// echoes back replaces the local one.
//
// # Identifier Format
//
//	session_<9 base36 chars>_<unix millis>
//
// For example: session_k3j9x0a1q_1718031245123
//
// # Busy Flag
//
// State also carries the busy flag that gates chat, summary and search
// requests. The flag is cooperative: requests started while it is set are
// dropped, not queued. Only the controller's ShowLoading and HideLoading
// toggle it.
//
// Nothing in this package is persisted.
package session
