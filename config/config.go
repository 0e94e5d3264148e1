package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	GatewayTimeout        time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"30s"`
	GatewayRetryAttempts  int           `env:"GATEWAY_RETRY_ATTEMPTS" envDefault:"3"`
	GatewayRetryBaseDelay time.Duration `env:"GATEWAY_RETRY_BASE_DELAY" envDefault:"100ms"`
	GatewayRetryMaxDelay  time.Duration `env:"GATEWAY_RETRY_MAX_DELAY" envDefault:"5s"`
	// Readiness probes this URL when set.
	GatewayHealthURL string `env:"GATEWAY_HEALTH_URL"`

	ShowCancelAlert  bool          `env:"SHOW_CANCEL_ALERT" envDefault:"false"`
	ChallengeTimeout time.Duration `env:"CHALLENGE_TIMEOUT" envDefault:"10m"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	DeliveryTimeout  time.Duration `env:"OUTCOME_DELIVERY_TIMEOUT" envDefault:"5s"`

	// Kafka outcome publishing is off when no brokers are set.
	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaOutcomesTopic string   `env:"KAFKA_OUTCOMES_TOPIC" envDefault:"checkout.outcomes"`
	KafkaOutcomesDLQ   string   `env:"KAFKA_OUTCOMES_DLQ_TOPIC"`

	// The OpenSearch outcome index is off when no URLs are set.
	OpensearchURLs          []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexOutcomes string   `env:"OPENSEARCH_INDEX_OUTCOMES" envDefault:"checkout-outcomes"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("PORT out of range: %d", c.Port)
	case c.GatewayTimeout <= 0:
		return fmt.Errorf("GATEWAY_TIMEOUT must be positive")
	case c.ChallengeTimeout <= 0:
		return fmt.Errorf("CHALLENGE_TIMEOUT must be positive")
	case len(c.KafkaBrokers) > 0 && c.KafkaOutcomesTopic == "":
		return fmt.Errorf("KAFKA_OUTCOMES_TOPIC is required with KAFKA_BROKERS")
	}
	return nil
}

func (c Config) KafkaEnabled() bool { return len(c.KafkaBrokers) > 0 }

func (c Config) OpensearchEnabled() bool { return len(c.OpensearchURLs) > 0 }
