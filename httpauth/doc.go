// Package httpauth guards the metrics endpoints with bearer-token
// authentication. Health snapshots leak memory layout, load figures and
// usage counters, so exposing them unauthenticated on a public listener is
// rarely acceptable.
//
// Only HMAC-signed JWTs are supported; asymmetric keys and key rotation
// belong to the embedding application's auth stack.
package httpauth
