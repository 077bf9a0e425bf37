// Package token implements the SMTP API token use cases: listing,
// creation, update, and deletion. The listing is always a fresh fetch;
// nothing is patched locally after a mutation.
package token
