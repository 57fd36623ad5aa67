package linkqueue

import "errors"

// ErrUnknownFlowModel indicates a FlowModel value outside the closed set
// {PointQueue, SpatialQueue, KinematicWave}.
var ErrUnknownFlowModel = errors.New("linkqueue: unknown flow model")
