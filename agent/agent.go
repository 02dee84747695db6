// Package agent drives one caller utterance through classification,
// order mutation, finalization, and reply generation. It owns the
// browsing → ordering → awaiting_location → completing → complete arc
// and the retry contract around the confirmation dispatch.
package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grandvista/roomline/intent"
	"github.com/grandvista/roomline/logging"
	"github.com/grandvista/roomline/menu"
	"github.com/grandvista/roomline/notify"
	"github.com/grandvista/roomline/session"
)

// FallbackReply is spoken whenever the responder cannot produce text.
// A caller always hears something; classification or generation trouble
// never drops the call.
const FallbackReply = "How can I help you with our menu today?"

// TextResponder is the external generative collaborator. It consumes
// the assembled context bundle and recent turns and returns plain text
// in the caller's language.
type TextResponder interface {
	Generate(ctx context.Context, bundle string, history []session.Turn) (string, error)
}

// Reply is the outcome of processing one utterance.
type Reply struct {
	Text        string
	Language    string
	OrderPlaced bool // true when this utterance finalized the order
}

// Agent wires the catalog, session registry, classifier, responder, and
// confirmation dispatcher together.
type Agent struct {
	catalog    *menu.Catalog
	sessions   *session.Manager
	classifier *intent.Classifier
	responder  TextResponder
	dispatcher notify.Dispatcher
	log        *zap.Logger
}

// New builds an agent from its collaborators.
func New(catalog *menu.Catalog, sessions *session.Manager, responder TextResponder, dispatcher notify.Dispatcher) *Agent {
	return &Agent{
		catalog:    catalog,
		sessions:   sessions,
		classifier: intent.NewClassifier(catalog),
		responder:  responder,
		dispatcher: dispatcher,
		log:        logging.L(),
	}
}

// ProcessUtterance handles one inbound utterance for a call: classify,
// mutate session state, attempt finalize when the machine reaches
// completing, then assemble context and generate the spoken reply.
func (a *Agent) ProcessUtterance(ctx context.Context, callID, utterance, detectedLanguage string) (Reply, error) {
	sess, err := a.sessions.GetOrCreate(ctx, callID, detectedLanguage)
	if err != nil {
		return Reply{}, err
	}
	sess.Touch()
	sess.SetLanguage(detectedLanguage)
	sess.History.Append(session.RoleUser, utterance)

	state := intent.State{
		AwaitingLocation: sess.AwaitingLocation,
		OrderEmpty:       sess.Order.IsEmpty(),
		RoomSet:          sess.RoomLocation != "",
	}
	in := a.classifier.Classify(utterance, state)
	a.log.Debug("utterance classified",
		zap.String("call_id", callID),
		zap.String("intent", in.Kind.String()))

	note, placed := a.applyIntent(ctx, sess, in)

	bundle := a.assembleContext(sess, utterance, note)
	reply, err := a.responder.Generate(ctx, bundle, sess.History.Recent(6))
	if err != nil {
		a.log.Warn("responder failed, using fallback",
			zap.String("call_id", callID), zap.Error(err))
		reply = FallbackReply
	}
	sess.History.Append(session.RoleAgent, reply)

	return Reply{Text: reply, Language: sess.Language, OrderPlaced: placed}, nil
}

// applyIntent mutates the session per the classified intent and returns
// the critical instruction for the responder plus whether the order was
// finalized on this turn.
func (a *Agent) applyIntent(ctx context.Context, sess *session.Session, in intent.Intent) (note string, placed bool) {
	switch in.Kind {
	case intent.LanguageSwitch:
		sess.SetLanguage(in.Language)
		return "The caller just switched languages. Acknowledge briefly and continue in the new language.", false

	case intent.RoomNumberProvided:
		if sess.OrderComplete {
			return "", false
		}
		wasAwaiting := sess.AwaitingLocation
		sess.SetRoomLocation(in.Room)
		a.log.Info("room location captured",
			zap.String("call_id", sess.CallID), zap.String("room", in.Room))
		if wasAwaiting && !sess.Order.IsEmpty() {
			return a.finalize(ctx, sess)
		}
		return "The caller's room number is now on file.", false

	case intent.OrderComplete:
		if sess.OrderComplete {
			return "", false
		}
		if sess.RoomLocation != "" {
			return a.finalize(ctx, sess)
		}
		sess.AwaitingLocation = true
		sess.Phase = session.PhaseAwaitingLocation
		return "CRITICAL: The caller wants to place the order but no room number is known. You MUST ask for their room number now.", false

	case intent.OrderAdd:
		if sess.OrderComplete {
			return "", false
		}
		if in.Item == nil {
			// Search miss: no mutation; the responder asks for clarification.
			return "The caller asked for something that isn't on the menu as phrased. Ask them to clarify which menu item they mean.", false
		}
		sess.Order.Append(in.Item.Name, in.Item.Price)
		if sess.Phase == session.PhaseBrowsing {
			sess.Phase = session.PhaseOrdering
		}
		a.log.Info("item added to order",
			zap.String("call_id", sess.CallID),
			zap.String("item", in.Item.Name),
			zap.Int("lines", sess.Order.Len()))
		return "", false
	}
	return "", false
}

// finalize drives completing → complete. Called only with a non-empty
// order and a set room location; anything else is a contract violation
// that is logged and ignored rather than crashing the call. On dispatch
// failure the order and room location are left intact and the same
// token is reused by the next attempt.
func (a *Agent) finalize(ctx context.Context, sess *session.Session) (note string, placed bool) {
	if sess.Order.IsEmpty() || sess.RoomLocation == "" {
		a.log.Error("finalize precondition violated",
			zap.String("call_id", sess.CallID),
			zap.Bool("order_empty", sess.Order.IsEmpty()),
			zap.Bool("room_set", sess.RoomLocation != ""))
		return "", false
	}

	sess.Phase = session.PhaseCompleting
	if sess.FinalizeToken == "" {
		sess.FinalizeToken = uuid.NewString()
	}

	conf := notify.Confirmation{
		Token:        sess.FinalizeToken,
		CallID:       sess.CallID,
		RoomLocation: sess.RoomLocation,
		Lines:        sess.Order.Lines(),
		Totals:       sess.Order.Total(),
		PlacedAt:     time.Now(),
	}

	if err := a.dispatcher.Dispatch(ctx, conf); err != nil {
		a.log.Warn("order confirmation failed, order preserved for retry",
			zap.String("call_id", sess.CallID),
			zap.String("token", conf.Token),
			zap.Error(err))
		return "CRITICAL: Sending the order just failed. Apologize briefly and ask the caller to confirm placing the order once more.", false
	}

	totals := conf.Totals
	sess.Order.Clear()
	sess.OrderComplete = true
	sess.AwaitingLocation = false
	sess.FinalizeToken = ""
	sess.Phase = session.PhaseComplete
	a.log.Info("order placed",
		zap.String("call_id", sess.CallID),
		zap.String("room", conf.RoomLocation),
		zap.Float64("grand_total", totals.GrandTotal))
	return "The order was just placed successfully. Confirm the total and a 30 to 45 minute delivery time.", true
}

// EndCall discards all session state for a call. Ending an unknown call
// is a no-op.
func (a *Agent) EndCall(ctx context.Context, callID string) error {
	return a.sessions.Remove(ctx, callID)
}
