// Package suppression implements the suppression list use case. The
// list is read-only from the client's perspective: recipients land on
// it through complaints, unsubscribes, and hard bounces recorded by the
// sending infrastructure, and the client only inspects it.
package suppression
