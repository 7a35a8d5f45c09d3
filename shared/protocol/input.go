package protocol

// PlayerInput is sent by a client whenever its input changes. The server
// drives the client's player with the latest one it received.
type PlayerInput struct {
	Sequence uint32  // Incrementing ID, newest wins
	MoveX    float64 // -1..1
	Jump     bool
}
