package core

import (
	"log"
	"math"
	"sync"

	"github.com/leap-fish/necs/router"
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/gamemath"
	"github.com/automoto/robots/shared/physics"
	"github.com/automoto/robots/shared/protocol"
)

// Sessions is what the network layer needs from the game: one player per
// connected client.
type Sessions interface {
	Join() donburi.Entity
	QueueInput(entity donburi.Entity, in physics.PlayerInput)
	Leave(entity donburi.Entity)
}

type netSession struct {
	entity   donburi.Entity
	sequence uint32
}

// netClients tracks which network client owns which player.
type netClients struct {
	sessions Sessions
	mu       sync.Mutex
	clients  map[*router.NetworkClient]*netSession
}

func newNetClients(sessions Sessions) *netClients {
	return &netClients{
		sessions: sessions,
		clients:  make(map[*router.NetworkClient]*netSession),
	}
}

// register installs the necs router callbacks. The router is process-wide.
func (n *netClients) register() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
		n.connect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("Client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("Client %s disconnected", client.Id())
		}
		n.disconnect(client)
	})

	router.On(func(client *router.NetworkClient, input protocol.PlayerInput) {
		n.input(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (n *netClients) connect(client *router.NetworkClient) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.clients[client]; ok {
		return
	}
	n.clients[client] = &netSession{entity: n.sessions.Join()}
	UpdateSyncClients(len(n.clients))
}

// input forwards the client's input unless it is older than the last one
// applied.
func (n *netClients) input(client *router.NetworkClient, in protocol.PlayerInput) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	session, ok := n.clients[client]
	if !ok {
		return false
	}
	if in.Sequence != 0 && in.Sequence <= session.sequence {
		return false
	}
	session.sequence = in.Sequence

	moveX := in.MoveX
	if math.IsNaN(moveX) {
		moveX = 0
	}
	n.sessions.QueueInput(session.entity, physics.PlayerInput{
		MoveX: gamemath.Clamp(moveX, -1, 1),
		Jump:  in.Jump,
	})
	return true
}

func (n *netClients) disconnect(client *router.NetworkClient) {
	n.mu.Lock()
	defer n.mu.Unlock()
	session, ok := n.clients[client]
	if !ok {
		return
	}
	delete(n.clients, client)
	n.sessions.Leave(session.entity)
	UpdateSyncClients(len(n.clients))
}

func (n *netClients) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.clients)
}
