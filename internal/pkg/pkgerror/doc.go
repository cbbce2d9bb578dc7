// Package pkgerror defines the closed error-code enumeration and the structured
// error type shared by the core, the boundary layer and the adapters.
//
// It keeps error handling consistent by:
//   - Providing a Code type whose discriminants are stable across every binding.
//   - Providing a structured Error type that carries a message and a code, which
//     the boundary turns into an integer and the HTTP edge into a status code.
package pkgerror
