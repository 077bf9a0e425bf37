// Package domain defines the core business types for the EMS panel client.
//
// Types in this package are pure value objects with no behavior, no network
// dependencies, and no persistence concerns. They are the shared language
// between services, repositories, and callers.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No http.Request, no context.Context in struct fields
//   - Validation methods are allowed (they're pure functions on the type)
//   - Constants and enums belong here, including the normalization rules
//     for unrecognized wire values
package domain
