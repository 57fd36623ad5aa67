// Package linkqueue implements the per-link mesoscopic queue state that
// backs the simulation loop: a FIFO of in-queue agent indices, an
// outflow-capacity schedule, and the three traffic-flow variants of
// increasing fidelity — point-queue, spatial-queue, and kinematic-wave.
//
// A LinkQueue never inspects another link's state directly; the
// simulation package resolves inter-link interaction each interval by
// asking the downstream queue for its available space before releasing
// agents from the upstream one. This keeps LinkQueue unaware of network
// topology: dispatch on FlowModel is a small switch inside the advance
// step, not a virtual-dispatch interface.
package linkqueue
