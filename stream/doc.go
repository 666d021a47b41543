// Package stream pushes health reports to WebSocket clients.
//
// Each connection receives the current report immediately and then one
// report per push interval. Pushes are pure reads; they never record usage
// events. The handler exits when the client closes the connection or a
// write fails.
package stream
