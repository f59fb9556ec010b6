package setalgebra

import "errors"

// ErrUnknownOperator is raised when the fold step in Evaluate reaches a
// node that is not one of Intersect/Union/Subtract/leaf/sentinel. In
// practice this means a Complement survived optimization because it wraps
// something the optimizer could not reduce to a subtraction.
var ErrUnknownOperator = errors.New("setalgebra: unknown operator reached fold step")
