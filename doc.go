// Package dwavemcp exposes a mocked D-Wave quantum annealing problem
// store as a set of Model Context Protocol (MCP) tools.
//
// The server publishes six tools: get_simulator_status,
// set_simulator_config, create_qubo, create_ising, solve_problem and
// get_annealing_time_status. Problems and results live in memory for
// the lifetime of the server, and solving is a stub that returns a
// fixed sample pattern without reading the coefficients.
//
// # Serving over stdio
//
//	s := dwavemcp.New()
//	if err := s.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// # Serving over HTTP
//
//	s := dwavemcp.New(dwavemcp.WithLogger(logger))
//	if err := http.ListenAndServe(":3000", s.Handler()); err != nil {
//		log.Fatal(err)
//	}
//
// The HTTP handler mounts the streamable transport at /mcp and answers
// a JSON liveness message at the root path.
//
// # Calling tools in process
//
//	s := dwavemcp.New()
//	res, err := s.CallTool(ctx, dwavemcp.ToolCreateQUBO, map[string]any{
//		"Q": map[string]float64{"0,0": -1, "1,1": -1, "0,1": 2},
//	})
//
// Tool failures are reported in-band: the returned result carries
// IsError and a message prefixed with "Error processing D-Wave server
// query:", which matches what remote MCP clients observe.
package dwavemcp
