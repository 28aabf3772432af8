package usecase

import (
	"context"
	"strings"

	"digaxy-assistant/internal/chat"
	"digaxy-assistant/internal/estimate"
	"digaxy-assistant/internal/model"
)

// Step applies one utterance to the caller's session. The state machine is
// strict: each state either accepts the utterance (stores data, advances) or
// rejects it (stays put, asks again). No jumping between states.
func (uc *implUseCase) Step(ctx context.Context, sc model.Scope, input chat.StepInput) (chat.StepOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.StepOutput{}, chat.ErrEmptyMessage
	}

	sess, err := uc.sessions.GetOrCreate(ctx, input.SessionID)
	if err != nil {
		return chat.StepOutput{}, err
	}

	out := uc.step(ctx, sess, input.Message)

	if err := uc.sessions.Save(ctx, sess); err != nil {
		return chat.StepOutput{}, err
	}

	out.SessionID = sess.ID
	out.State = string(sess.State)
	out.Complete = sess.IsComplete()
	return out, nil
}

// Reset discards the caller's session state.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	sess, err := uc.sessions.Get(ctx, sc.SessionID)
	if err != nil {
		return chat.ErrSessionNotFound
	}
	sess.Reset()
	return uc.sessions.Save(ctx, sess)
}

func (uc *implUseCase) step(ctx context.Context, sess *model.Session, message string) chat.StepOutput {
	utterance := strings.ToLower(strings.TrimSpace(message))

	switch sess.State {
	case model.StateGreeting:
		return uc.stepGreeting(sess, utterance)
	case model.StateServiceType:
		return uc.stepServiceType(sess, utterance)
	case model.StateItemDetails:
		return uc.stepItemDetails(sess, message)
	case model.StatePickupLocation:
		return uc.stepPickupLocation(sess, message)
	case model.StateDropoffLocation:
		return uc.stepDropoffLocation(sess, message)
	case model.StateVehicleType:
		return uc.stepVehicleType(ctx, sess, utterance)
	case model.StateConfirmEstimate:
		return uc.stepConfirmEstimate(sess, utterance)
	case model.StateBooking:
		return chat.StepOutput{Reply: replyBookingProcessing}
	default:
		return chat.StepOutput{Reply: replyUnknown}
	}
}

func (uc *implUseCase) stepGreeting(sess *model.Session, utterance string) chat.StepOutput {
	if !containsAny(utterance, greetingKeywords) {
		return chat.StepOutput{Reply: replyGreetingRetry}
	}
	sess.Advance(model.StateServiceType)
	return chat.StepOutput{Reply: replyWelcome()}
}

func (uc *implUseCase) stepServiceType(sess *model.Session, utterance string) chat.StepOutput {
	name, ok := matchService(utterance)
	if !ok {
		return chat.StepOutput{Reply: replyServiceRetry()}
	}
	sess.Fields.ServiceType = name
	sess.Advance(model.StateItemDetails)
	return chat.StepOutput{Reply: replyServiceSelected(name)}
}

func (uc *implUseCase) stepItemDetails(sess *model.Session, message string) chat.StepOutput {
	if len(message) <= 3 {
		return chat.StepOutput{Reply: replyItemsRetry}
	}
	sess.Fields.ItemDescription = message
	sess.Advance(model.StatePickupLocation)
	return chat.StepOutput{Reply: replyItemsSelected(message)}
}

func (uc *implUseCase) stepPickupLocation(sess *model.Session, message string) chat.StepOutput {
	if len(message) <= 5 {
		return chat.StepOutput{Reply: replyPickupRetry}
	}
	sess.Fields.PickupLocation = message
	sess.Advance(model.StateDropoffLocation)
	return chat.StepOutput{Reply: replyPickupSelected(message)}
}

func (uc *implUseCase) stepDropoffLocation(sess *model.Session, message string) chat.StepOutput {
	if len(message) <= 5 {
		return chat.StepOutput{Reply: replyDropoffRetry}
	}
	sess.Fields.DropoffLocation = message
	sess.Advance(model.StateVehicleType)
	return chat.StepOutput{Reply: replyDropoffSelected(message)}
}

// stepVehicleType is the only transition with a side effect: once the
// vehicle is known, the estimator runs synchronously and its result is
// frozen into the session. The conversation advances even when estimation
// fails unexpectedly; it must never strand the user.
func (uc *implUseCase) stepVehicleType(ctx context.Context, sess *model.Session, utterance string) chat.StepOutput {
	vehicle, ok := matchVehicle(utterance)
	if !ok {
		return chat.StepOutput{Reply: replyVehicleRetry}
	}
	sess.Fields.VehicleType = vehicle

	res, err := uc.estimator.Estimate(ctx,
		sess.Fields.PickupLocation,
		sess.Fields.DropoffLocation,
		vehicle,
		sess.Fields.ItemDescription,
	)

	sess.Advance(model.StateConfirmEstimate)

	if err != nil {
		uc.l.Errorf(ctx, "chat: estimator failed for session %s: %v", sess.ID, err)
		return chat.StepOutput{
			Reply:     replyEstimateGeneric,
			FollowUps: []string{followUpGeneric},
		}
	}

	distance, total := res.DistanceKm, res.TotalCost
	sess.Fields.DistanceKm = &distance
	sess.Fields.EstimatedCost = &total

	if !res.ViaOracle {
		uc.l.Infof(ctx, "chat: session %s estimated via fallback", sess.ID)
	}

	_, rate := estimate.ResolveRate(vehicle)
	return chat.StepOutput{
		Reply:     formatEstimate(sess.Fields, rate.BaseFare, res),
		FollowUps: []string{followUpConfirm},
	}
}

func (uc *implUseCase) stepConfirmEstimate(sess *model.Session, utterance string) chat.StepOutput {
	switch {
	case containsAny(utterance, confirmKeywords):
		sess.Advance(model.StateBooking)
		return chat.StepOutput{Reply: formatBookingConfirmed(sess.Fields, uc.bookingURL)}
	case containsAny(utterance, cancelKeywords):
		sess.Reset()
		return chat.StepOutput{Reply: replyRestart}
	default:
		return chat.StepOutput{Reply: replyConfirmRetry(sess.Fields.EstimatedCost)}
	}
}
