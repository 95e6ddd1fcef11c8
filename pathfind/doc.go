// Package pathfind turns a text grid into a shortest sequence of moves.
//
// What:
//
//   - Locate finds the unique start and goal markers.
//   - Solve builds the not-wall graph of the grid, runs A* with the
//     Manhattan heuristic and maps the node path to actions.
//   - Action and Actions translate consecutive node IDs to one of
//     'R', 'L', 'D', 'U' by comparing cell coordinates.
//
// A grid without a route is not an error: Plan.Found is false and
// Plan.Actions is empty.
//
// Observability:
//
//	– Tracing:  each Solve opens a "pathfind.Solve" span on the configured
//	            TracerProvider (the global one by default).
//	– Logging:  one debug record per Solve on the configured *slog.Logger.
//	– Metrics:  a *metrics.Recorder, when supplied, observes every search.
//
// Errors (sentinel):
//
//	– ErrGridNil          if the grid pointer is nil.
//	– ErrNoStart          if the start marker does not occur.
//	– ErrNoGoal           if the goal marker does not occur.
//	– ErrDuplicateMarker  if the start or goal marker occurs more than once.
//	– ErrOptionViolation  if an Option carries an invalid value.
//
// Search limit errors from astar (ErrExpansionLimit) are passed through.
package pathfind
