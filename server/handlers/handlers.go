package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lazharichir/pokerreview/domain"
	"github.com/lazharichir/pokerreview/domain/commands"
	"github.com/lazharichir/pokerreview/server/connection"
	"github.com/lazharichir/pokerreview/server/events"
)

const (
	EvaluationResultName = "EVALUATION_RESULT"
	SubscribedName       = "SUBSCRIBED"
	UnsubscribedName     = "UNSUBSCRIBED"
)

// CommandRouter routes incoming commands to the appropriate handler
type CommandRouter struct {
	reviewer *domain.Reviewer
	connMgr  *connection.Manager
}

// NewCommandRouter creates a new command router
func NewCommandRouter(reviewer *domain.Reviewer, connMgr *connection.Manager) *CommandRouter {
	return &CommandRouter{
		reviewer: reviewer,
		connMgr:  connMgr,
	}
}

// HandleCommand processes an incoming command message
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	// First determine command type
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return err
	}

	switch baseCmd.Name {
	case commands.EvaluateBoard{}.Name():
		var cmd commands.EvaluateBoard
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleEvaluateBoard(client, cmd)

	case commands.SubscribeSession{}.Name():
		var cmd commands.SubscribeSession
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleSubscribeSession(client, cmd)

	case commands.UnsubscribeSession{}.Name():
		var cmd commands.UnsubscribeSession
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleUnsubscribeSession(client, cmd)

	default:
		return fmt.Errorf("unknown command type %q", baseCmd.Name)
	}
}

func (r *CommandRouter) handleEvaluateBoard(client *connection.Client, cmd commands.EvaluateBoard) error {
	evaluation, err := r.reviewer.Evaluate(domain.EvaluationRequest{
		SessionID: cmd.SessionID,
		Board:     cmd.Board,
		Hand:      cmd.Hand,
	})
	if err != nil {
		return err
	}
	return r.reply(client, EvaluationResultName, evaluation)
}

func (r *CommandRouter) handleSubscribeSession(client *connection.Client, cmd commands.SubscribeSession) error {
	if cmd.SessionID == "" {
		return errors.New("sessionId is required")
	}
	if !r.connMgr.AddSessionToClient(client.ID, cmd.SessionID) {
		return errors.New("client is not connected")
	}
	return r.reply(client, SubscribedName, cmd)
}

func (r *CommandRouter) handleUnsubscribeSession(client *connection.Client, cmd commands.UnsubscribeSession) error {
	if !r.connMgr.RemoveSessionFromClient(client.ID, cmd.SessionID) {
		return errors.New("client is not subscribed to this session")
	}
	return r.reply(client, UnsubscribedName, cmd)
}

func (r *CommandRouter) reply(client *connection.Client, name string, payload any) error {
	data, err := events.Encode(name, payload)
	if err != nil {
		return err
	}
	if !r.connMgr.SendToClient(client.ID, data) {
		return errors.New("client is not connected")
	}
	return nil
}
