// Package core defines the shared language of the leapudf system.
//
// This package contains:
//   - Engine type descriptors (PrimitiveType, Type)
//   - Function signatures and catalog metadata records (Signature, FunctionReference)
//   - Function kinds (FunctionKind)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
