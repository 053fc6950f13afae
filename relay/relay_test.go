package relay

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylan-dingjan/bebetterbot/gateway"
	"github.com/dylan-dingjan/bebetterbot/model"
)

const (
	reviewChannel = "C089BE0DJL8"
	dmChannel     = "D0SUBMITTER"
	submitterID   = "U0SUBMITTER"
	reviewerID    = "U0REVIEWER"
	caseID        = "AB12CD34"
)

type posted struct {
	channelID string
	msg       gateway.Outbound
}

// fakeGateway serves canned history and records posts.
type fakeGateway struct {
	posts   []posted
	history map[string]*gateway.Message // channelID -> as-of candidate
	dms     map[string]string           // userID -> DM channel

	postErr    error
	historyErr error
}

func (f *fakeGateway) PostMessage(_ context.Context, channelID string, msg gateway.Outbound) (string, error) {
	if f.postErr != nil {
		return "", f.postErr
	}
	f.posts = append(f.posts, posted{channelID: channelID, msg: msg})
	return fmt.Sprintf("100.%06d", len(f.posts)), nil
}

func (f *fakeGateway) PostEphemeral(_ context.Context, channelID, userID string, msg gateway.Outbound) error {
	return nil
}

func (f *fakeGateway) OpenDM(_ context.Context, userID string) (string, error) {
	ch, ok := f.dms[userID]
	if !ok {
		return "", errors.New("unknown user")
	}
	return ch, nil
}

func (f *fakeGateway) LatestBefore(_ context.Context, channelID, ts string) (*gateway.Message, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history[channelID], nil
}

type fakeStore struct {
	sub *model.Submission
	err error
}

func (f fakeStore) GetCase(string) (*model.Submission, error) { return f.sub, f.err }

func dmReply(text string) model.RelayEvent {
	return model.RelayEvent{
		ChannelID: dmChannel,
		ChannelIM: true,
		UserID:    submitterID,
		Timestamp: "200.000100",
		ThreadTS:  "100.000001",
		Text:      text,
	}
}

func channelReply(text string) model.RelayEvent {
	return model.RelayEvent{
		ChannelID: reviewChannel,
		ChannelIM: false,
		UserID:    reviewerID,
		Timestamp: "200.000200",
		ThreadTS:  "100.000002",
		Text:      text,
	}
}

func TestRelayIgnoresTopLevelMessages(t *testing.T) {
	gw := &fakeGateway{}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	ev := dmReply("Case ID: " + caseID)
	ev.ThreadTS = ""

	assert.Equal(t, model.RelayIgnored, r.Relay(context.Background(), ev))
	assert.Empty(t, gw.posts)
}

func TestRelayIgnoresBotMessages(t *testing.T) {
	gw := &fakeGateway{}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	ev := dmReply("Case ID: " + caseID)
	ev.BotID = "B012345"

	assert.Equal(t, model.RelayIgnored, r.Relay(context.Background(), ev))
	assert.Empty(t, gw.posts)
}

func TestRelayIgnoresMessagesWithoutToken(t *testing.T) {
	gw := &fakeGateway{}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	assert.Equal(t, model.RelayIgnored, r.Relay(context.Background(), dmReply("here is the video")))
	assert.Empty(t, gw.posts)
}

func TestRelayIgnoresUnrelatedChannels(t *testing.T) {
	gw := &fakeGateway{}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	ev := channelReply("Case ID: " + caseID)
	ev.ChannelID = "C0SOMEWHERE"

	assert.Equal(t, model.RelayIgnored, r.Relay(context.Background(), ev))
	assert.Empty(t, gw.posts)
}

func TestRelayDMToChannelViaStore(t *testing.T) {
	gw := &fakeGateway{}
	r := &Relayer{
		GW: gw,
		Cases: fakeStore{sub: &model.Submission{
			CaseID:         caseID,
			SubmitterID:    submitterID,
			DMChannelID:    dmChannel,
			DMAnchorTS:     "100.000001",
			ReviewAnchorTS: "100.000002",
		}},
		ReviewChannel: reviewChannel,
	}

	text := "Case ID: " + caseID + " here is the final cut"
	outcome := r.Relay(context.Background(), dmReply(text))

	assert.Equal(t, model.RelayDelivered, outcome)
	require.Len(t, gw.posts, 1)
	assert.Equal(t, reviewChannel, gw.posts[0].channelID)
	assert.Equal(t, "100.000002", gw.posts[0].msg.ThreadTS)
	assert.Contains(t, gw.posts[0].msg.Text, text)
	assert.Contains(t, gw.posts[0].msg.Text, "<@"+submitterID+">")
}

func TestRelayDMToChannelViaHistoryFallback(t *testing.T) {
	gw := &fakeGateway{
		history: map[string]*gateway.Message{
			reviewChannel: {
				ChannelID: reviewChannel,
				Timestamp: "100.000002",
				Text:      "New Social Post Submission:\n*Submitted by:* <@" + submitterID + ">\n*Case ID:* " + caseID,
			},
		},
	}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	outcome := r.Relay(context.Background(), dmReply("Case ID: "+caseID))

	assert.Equal(t, model.RelayDelivered, outcome)
	require.Len(t, gw.posts, 1)
	assert.Equal(t, reviewChannel, gw.posts[0].channelID)
	assert.Equal(t, "100.000002", gw.posts[0].msg.ThreadTS)
}

func TestRelayChannelToDMViaHistoryFallback(t *testing.T) {
	anchorText := "New Social Post Submission:\n*Submitted by:* <@" + submitterID + ">\n*Case ID:* " + caseID
	gw := &fakeGateway{
		history: map[string]*gateway.Message{
			reviewChannel: {ChannelID: reviewChannel, Timestamp: "100.000002", Text: anchorText},
			dmChannel:     {ChannelID: dmChannel, Timestamp: "100.000001", Text: "✅ Your social post has been submitted!\n*Case ID:* " + caseID},
		},
		dms: map[string]string{submitterID: dmChannel},
	}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	text := "Case ID: " + caseID + " looks good, one small note"
	outcome := r.Relay(context.Background(), channelReply(text))

	assert.Equal(t, model.RelayDelivered, outcome)
	require.Len(t, gw.posts, 1)
	assert.Equal(t, dmChannel, gw.posts[0].channelID)
	assert.Equal(t, "100.000001", gw.posts[0].msg.ThreadTS)
	assert.Contains(t, gw.posts[0].msg.Text, text)
	assert.Contains(t, gw.posts[0].msg.Text, "<@"+reviewerID+">")
}

func TestRelayRoundTripPreservesText(t *testing.T) {
	sub := &model.Submission{
		CaseID:         caseID,
		SubmitterID:    submitterID,
		DMChannelID:    dmChannel,
		DMAnchorTS:     "100.000001",
		ReviewAnchorTS: "100.000002",
	}
	gw := &fakeGateway{dms: map[string]string{submitterID: dmChannel}}
	r := &Relayer{GW: gw, Cases: fakeStore{sub: sub}, ReviewChannel: reviewChannel}

	fromSubmitter := "Case ID: " + caseID + " uploading now"
	fromReviewer := "Case ID: " + caseID + " please reshoot the intro"

	require.Equal(t, model.RelayDelivered, r.Relay(context.Background(), dmReply(fromSubmitter)))
	require.Equal(t, model.RelayDelivered, r.Relay(context.Background(), channelReply(fromReviewer)))

	require.Len(t, gw.posts, 2)
	assert.Equal(t, reviewChannel, gw.posts[0].channelID)
	assert.Contains(t, gw.posts[0].msg.Text, fromSubmitter)
	assert.Equal(t, dmChannel, gw.posts[1].channelID)
	assert.Contains(t, gw.posts[1].msg.Text, fromReviewer)
}

func TestRelayNoAnchorFound(t *testing.T) {
	// The as-of candidate exists but carries a different token.
	gw := &fakeGateway{
		history: map[string]*gateway.Message{
			reviewChannel: {Timestamp: "100.000002", Text: "*Case ID:* ZZ99XX88"},
		},
	}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	outcome := r.Relay(context.Background(), dmReply("Case ID: "+caseID))

	assert.Equal(t, model.RelayNoAnchor, outcome)
	assert.Empty(t, gw.posts)
}

func TestRelayNoAnchorWhenHistoryEmpty(t *testing.T) {
	gw := &fakeGateway{}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	outcome := r.Relay(context.Background(), dmReply("Case ID: "+caseID))

	assert.Equal(t, model.RelayNoAnchor, outcome)
	assert.Empty(t, gw.posts)
}

func TestRelayNoAnchorWhenHistoryFetchFails(t *testing.T) {
	// A transport error while fetching history abandons the attempt quietly.
	gw := &fakeGateway{historyErr: errors.New("slack is down")}
	r := &Relayer{GW: gw, ReviewChannel: reviewChannel}

	outcome := r.Relay(context.Background(), dmReply("Case ID: "+caseID))

	assert.Equal(t, model.RelayNoAnchor, outcome)
	assert.Empty(t, gw.posts)
}

func TestRelayTransportErrorOnPost(t *testing.T) {
	gw := &fakeGateway{postErr: errors.New("slack is down")}
	r := &Relayer{
		GW: gw,
		Cases: fakeStore{sub: &model.Submission{
			CaseID:         caseID,
			SubmitterID:    submitterID,
			DMChannelID:    dmChannel,
			DMAnchorTS:     "100.000001",
			ReviewAnchorTS: "100.000002",
		}},
		ReviewChannel: reviewChannel,
	}

	outcome := r.Relay(context.Background(), dmReply("Case ID: "+caseID))

	assert.Equal(t, model.RelayTransportError, outcome)
	assert.Empty(t, gw.posts)
}

func TestRelayStoreErrorFallsBackToHistory(t *testing.T) {
	gw := &fakeGateway{
		history: map[string]*gateway.Message{
			reviewChannel: {Timestamp: "100.000002", Text: "*Case ID:* " + caseID + " <@" + submitterID + ">"},
		},
	}
	r := &Relayer{
		GW:            gw,
		Cases:         fakeStore{err: errors.New("db locked")},
		ReviewChannel: reviewChannel,
	}

	outcome := r.Relay(context.Background(), dmReply("Case ID: "+caseID))

	assert.Equal(t, model.RelayDelivered, outcome)
	require.Len(t, gw.posts, 1)
}
