package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"headsupholdem-server/pkg/poker/holdem"
)

// CommandStart asks the room to deal the next hand. Any other command name is
// interpreted as a poker action
const CommandStart = "start"

// Command is a message received from a connected client
type Command struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// Client is a player connected to a room via websocket
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending events to the client
	send chan *Event

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	playerID int64
	room     *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID int64, room *Room) *Client {
	return &Client{
		send:     make(chan *Event, 256),
		Close:    make(chan string),
		Conn:     conn,
		playerID: playerID,
		room:     room,
	}
}

// PlayerID returns the connected player's identifier
func (c *Client) PlayerID() int64 {
	return c.playerID
}

// Send sends an event to the web client
func (c *Client) Send(event *Event) bool {
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan *Event {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%d:%s", c.playerID, c.room.Code())
}

// ReceivedCommand is called when the server receives a command from a
// connected client. Command errors go back to the sender only
func (c *Client) ReceivedCommand(cmd *Command) {
	var err error
	if cmd.Action == CommandStart {
		err = c.room.StartHand()
	} else {
		action, actionErr := holdem.ActionFromString(cmd.Action)
		if actionErr != nil {
			err = actionErr
		} else {
			err = c.room.Act(c.playerID, action, cmd.Amount)
		}
	}

	if err != nil {
		logrus.WithError(err).WithField("client", c.String()).Debug("command rejected")
		c.Send(&Event{
			Key:     "error",
			Room:    c.room.Code(),
			Message: err.Error(),
		})
	}
}
