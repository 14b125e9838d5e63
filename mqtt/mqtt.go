// mqtt.go - MQTT client used to publish application events
// Publishing is optional: without a broker every Publish is a no-op

package mqtt // Declares the package name

import ( // Import required packages
	"fmt"  // Error wrapping
	"sync" // Guards the shared client
	"time" // Timeouts and client IDs

	"github.com/bytedance/sonic"               // JSON payload encoding
	paho "github.com/eclipse/paho.mqtt.golang" // MQTT client library
)

// Event topics
const (
	TopicFriendRequest  = "traits/friends/request" // A user added a friend
	TopicPasswordRemind = "traits/password/remind" // Password reminder requested
	TopicPasswordReset  = "traits/password/reset"  // Reset token issued
)

const publishTimeout = 5 * time.Second // Max wait for a broker ack

var (
	mu     sync.RWMutex
	client paho.Client // nil until Connect succeeds
)

// Connect - Dials the broker. An empty broker leaves publishing disabled.
func Connect(broker string) error {
	if broker == "" {
		return nil
	}
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(fmt.Sprintf("traits-backend-%d", time.Now().UnixNano())). // Unique per process
		SetAutoReconnect(true).                                               // Survive broker restarts
		SetConnectTimeout(10 * time.Second)

	c := paho.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt connect %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect %s: %w", broker, err)
	}

	mu.Lock()
	client = c
	mu.Unlock()
	return nil
}

// Disconnect - Closes the connection, if any
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		client.Disconnect(250) // Give in-flight messages 250ms
		client = nil
	}
}

// Enabled - Reports whether a broker connection exists
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return client != nil
}

// Publish - Sends payload to topic
// Strings and byte slices are sent as is, anything else is JSON encoded.
// Without a connection it does nothing.
func Publish(topic string, payload interface{}) error {
	mu.RLock()
	c := client
	mu.RUnlock()
	if c == nil {
		return nil // Publishing disabled
	}

	body, err := encode(payload)
	if err != nil {
		return err
	}
	token := c.Publish(topic, 1, false, body) // QoS 1, not retained
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish %s: timed out", topic)
	}
	return token.Error()
}

func encode(payload interface{}) ([]byte, error) {
	switch p := payload.(type) {
	case string:
		return []byte(p), nil
	case []byte:
		return p, nil
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("mqtt encode payload: %w", err)
	}
	return body, nil
}
