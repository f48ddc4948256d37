// Package notify connects the site to the club's MQTT broker: the CMS
// announces content changes there, and new enquiries are announced to staff.
package notify

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

const (
	DefaultContentTopic = "clubsite/content/updated"
	DefaultEnquiryTopic = "clubsite/enquiries/new"

	publishTimeout = 5 * time.Second
)

// Purger drops cached content; satisfied by the cache backends.
type Purger interface {
	Purge(ctx context.Context, prefix string) (int, error)
}

// client is the part of mqtt.Client the notifier uses.
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Disconnect(quiesce uint)
}

type Topics struct {
	Content string
	Enquiry string
}

type Notifier struct {
	client client
	topics Topics
	purger Purger
}

// ContentUpdate is published by the CMS. An empty resource means everything.
type ContentUpdate struct {
	Resource string `json:"resource"`
}

type EnquiryEvent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Forwarded bool      `json:"forwarded"`
	CreatedAt time.Time `json:"created_at"`
}

// Connect dials the broker.
func Connect(brokerURL, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("[notify] connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("[notify] MQTT connection lost")
	}

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return c, nil
}

func New(c client, topics Topics, purger Purger) *Notifier {
	if topics.Content == "" {
		topics.Content = DefaultContentTopic
	}
	if topics.Enquiry == "" {
		topics.Enquiry = DefaultEnquiryTopic
	}
	return &Notifier{client: c, topics: topics, purger: purger}
}

// Subscribe starts listening for content updates.
func (n *Notifier) Subscribe() error {
	token := n.client.Subscribe(n.topics.Content, 1, n.handleContentUpdate)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", n.topics.Content, token.Error())
	}
	log.Info().Str("topic", n.topics.Content).Msg("[notify] subscribed to content updates")
	return nil
}

func (n *Notifier) handleContentUpdate(_ mqtt.Client, msg mqtt.Message) {
	var update ContentUpdate
	if len(msg.Payload()) > 0 {
		if err := json.Unmarshal(msg.Payload(), &update); err != nil {
			log.Warn().Err(err).Str("topic", msg.Topic()).Msg("[notify] ignoring malformed content update")
			return
		}
	}

	prefix := content.PurgePrefix(update.Resource)
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	purged, err := n.purger.Purge(ctx, prefix)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("[notify] cache purge failed")
		return
	}
	log.Info().Str("prefix", prefix).Int("purged", purged).Msg("[notify] content cache purged")
}

// EnquiryReceived announces a stored enquiry to staff.
func (n *Notifier) EnquiryReceived(e model.Enquiry) error {
	payload, err := json.Marshal(EnquiryEvent{
		ID:        e.ID,
		Kind:      e.Kind,
		Name:      e.Name,
		Email:     e.Email,
		Forwarded: e.Forwarded,
		CreatedAt: e.CreatedAt,
	})
	if err != nil {
		return err
	}

	token := n.client.Publish(n.topics.Enquiry, 1, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("timed out publishing enquiry %s", e.ID)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish enquiry %s: %w", e.ID, err)
	}
	return nil
}

func (n *Notifier) Close() {
	n.client.Disconnect(250)
	log.Info().Msg("[notify] MQTT client disconnected")
}
