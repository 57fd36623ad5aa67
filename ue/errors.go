package ue

import "errors"

// ErrEmptyPool indicates no path was found for an OD Key with positive
// demand — always fatal.
var ErrEmptyPool = errors.New("ue: empty column pool for OD with positive demand")

// ErrUnreachableOD indicates positive demand with no finite-cost path,
// raised at the first UE iteration.
var ErrUnreachableOD = errors.New("ue: unreachable OD with positive demand")

// ErrNumericFault indicates NaN or negative volume was produced during
// redistribution, always fatal.
var ErrNumericFault = errors.New("ue: numeric fault in column pool")
