package server

// Server is the lifecycle contract shared by the transport servers managed
// here. [RunServer] blocks until the transport stops; [Shutdown] releases
// its resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
