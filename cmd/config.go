package cmd

import (
	"fmt"
	"strings"
	"time"
)

// Event broker selectors for EVENTS_BROKER.
const (
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerNone     = "none"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisAddr              string
	IdentityCacheTTL       time.Duration
	EventsBroker           string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string
	JWTSecret              string
	OutboxSchedule         string
	LogLevel               string
}

// DSN renders the libpq connection string for the gorm postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	parts := strings.Split(c.KafkaHost, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Validate reports settings the process cannot start without.
func (c Config) Validate() error {
	switch {
	case c.HTTPPort == "":
		return fmt.Errorf("HTTP_PORT is required")
	case c.DBHost == "" || c.DBName == "":
		return fmt.Errorf("DB_HOST and DB_NAME are required")
	case c.JWTSecret == "":
		return fmt.Errorf("JWT_SECRET is required")
	}

	switch c.EventsBroker {
	case BrokerKafka:
		if len(c.KafkaBrokers()) == 0 || c.KafkaOrderChangedTopic == "" {
			return fmt.Errorf("KAFKA_HOST and KAFKA_ORDER_CHANGED_TOPIC are required for the kafka broker")
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" || c.RabbitMQExchange == "" {
			return fmt.Errorf("RABBITMQ_URL and RABBITMQ_EXCHANGE are required for the rabbitmq broker")
		}
	case BrokerNone:
	default:
		return fmt.Errorf("EVENTS_BROKER must be one of %s, %s, %s; got %q",
			BrokerKafka, BrokerRabbitMQ, BrokerNone, c.EventsBroker)
	}
	return nil
}
