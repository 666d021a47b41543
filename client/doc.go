// Package client defines the contract for browser-side performance
// collectors that report into the same pipeline as the server collector.
//
// The entries themselves originate from browser performance APIs and are
// gathered out of process; this package only fixes the shape of the
// boundary so transports and ingestion endpoints can be written against a
// stable interface.
package client
