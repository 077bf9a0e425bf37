// Package userdomain implements the sending-domain use cases: listing,
// creation, verification, and deletion. Verification asks the server to
// re-run its DNS checks and returns the updated aggregate; the client
// never evaluates DNS itself.
package userdomain
