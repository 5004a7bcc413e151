package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"demo/storefront/internal/validate"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const (
	DefaultOrderDate = "2025-01-28 01:01:01"
	DefaultItems     = "description1,description2"
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	Database string
	// Schema qualifies the order tables. On MySQL it is the database name.
	Schema   string
	User     string
	Password string
	// DSN, when set, is handed to the driver as is.
	DSN string

	OrderDate string
	Items     []string
	FakeItems int
	Timeout   time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	LogLevel  string
	LogFormat string
}

// Load reads the environment and lets command-line flags override it.
func Load(args []string) (Config, error) {
	var c Config
	fs := pflag.NewFlagSet("storefront", pflag.ContinueOnError)

	fs.StringVar(&c.Driver, "driver", env("DB_DRIVER", DriverMySQL), "database driver: mysql or postgres")
	fs.StringVar(&c.Host, "host", env("DB_HOST", "localhost"), "database host")
	port := fs.Int("port", envInt("DB_PORT", 0), "database port (default 3306 for mysql, 5432 for postgres)")
	fs.StringVar(&c.Database, "database", env("DB_NAME", "storefront"), "database name")
	fs.StringVar(&c.Schema, "schema", env("DB_SCHEMA", ""), "schema qualifying the order tables")
	fs.StringVar(&c.User, "user", env("DB_USER", os.Getenv("MYSQLUSER")), "database user")
	fs.StringVar(&c.DSN, "dsn", env("DB_DSN", ""), "full data source name, overrides host/port/user")
	fs.StringVar(&c.OrderDate, "order-date", env("ORDER_DATE", DefaultOrderDate), "order_date to toggle")
	items := fs.String("items", env("ORDER_ITEMS", DefaultItems), "comma separated item descriptions")
	fs.IntVar(&c.FakeItems, "gen-count", envInt("GEN_COUNT", 0), "generate N fake item descriptions instead of --items")
	fs.DurationVar(&c.Timeout, "timeout", envDuration("DB_TIMEOUT", 0), "overall deadline for database work (0 disables)")
	brokers := fs.String("kafka-brokers", env("KAFKA_BROKERS", ""), "comma separated brokers for order events")
	fs.StringVar(&c.KafkaTopic, "kafka-topic", env("KAFKA_TOPIC", "storefront.orders"), "order events topic")
	fs.StringVar(&c.LogLevel, "log-level", env("LOG_LEVEL", "info"), "log level")
	fs.StringVar(&c.LogFormat, "log-format", env("LOG_FORMAT", "console"), "log format: console or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Passwords are only read from the environment.
	c.Password = env("DB_PASSWORD", os.Getenv("MYSQLPASS"))
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	c.Port = *port
	if c.Port == 0 {
		c.Port = defaultPort(c.Driver)
	}
	if c.Schema == "" {
		c.Schema = defaultSchema(c.Driver, c.Database)
	}
	c.Items = splitCSV(*items)
	c.KafkaBrokers = splitCSV(*brokers)

	return c, c.Validate()
}

func (c Config) Validate() error {
	var errs validate.Errors
	if c.Driver != DriverMySQL && c.Driver != DriverPostgres {
		errs = append(errs, fmt.Errorf("driver: unsupported %q", c.Driver))
	}
	if c.DSN == "" && (c.Port <= 0 || c.Port > 65535) {
		errs = append(errs, fmt.Errorf("port: out of range: %d", c.Port))
	}
	if c.DSN == "" && c.Host == "" {
		errs = append(errs, errors.New("host: required"))
	}
	if _, err := validate.Identifier(c.Schema); err != nil {
		errs = append(errs, fmt.Errorf("schema: %w", err))
	}
	if _, err := validate.ParseOrderDate(c.OrderDate); err != nil {
		errs = append(errs, err)
	}
	if c.FakeItems < 0 {
		errs = append(errs, errors.New("gen-count: must be >= 0"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}
	return errs.OrNil()
}

// DataSourceName returns the connection string for the configured driver.
func (c Config) DataSourceName() string {
	if c.DSN != "" {
		return c.DSN
	}
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	switch c.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			Host:     addr,
			Path:     "/" + c.Database,
			RawQuery: "sslmode=disable",
		}
		// An empty user leaves PGUSER and the OS user to pgx.
		switch {
		case c.User != "" && c.Password != "":
			u.User = url.UserPassword(c.User, c.Password)
		case c.User != "":
			u.User = url.User(c.User)
		}
		return u.String()
	default:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = c.Database
		return mc.FormatDSN()
	}
}

// OrderTable is the qualified name of the order header table.
func (c Config) OrderTable() string { return c.Schema + ".order" }

// DetailTable is the qualified name of the order line-item table.
func (c Config) DetailTable() string { return c.Schema + ".order_details" }

func defaultPort(driver string) int {
	if driver == DriverPostgres {
		return 5432
	}
	return 3306
}

func defaultSchema(driver, database string) string {
	if driver == DriverPostgres {
		return "storefront"
	}
	return database
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	ps := strings.Split(s, ",")
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
