package cfg

import (
	"encoding/json"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ConfigDatabase struct {
	DbConn string `env:"DB_CONNECTION_STRING" env-default:"mongodb://localhost:27017"`
}

type Cache struct {
	CacheAddr string `env:"CACHE_ADDR" env-default:"localhost:6379"`
}

type HTTPServer struct {
	Addr string `env:"HTTP_ADDR" env-default:":8080"`
}

type AsynqConfig struct {
	Concurrency int    `env:"WQ_CONCURRENCY" env-default:"10"`
	MetricsAddr string `env:"WQ_METRICS_ADDR" env-default:":8081"`
	Queues      AsynqQueues
}

type AsynqQueues map[string]int

func (aq AsynqQueues) Contains(queueName string) bool {
	_, exists := aq[queueName]
	return exists
}

func (aq AsynqQueues) IsValid() bool {
	if len(aq) == 0 {
		return false
	}

	for _, weight := range aq {
		if weight <= 0 {
			return false
		}
	}

	return true
}

type Mail struct {
	SMTPHost string `env:"SMTP_HOST" env-default:"localhost"`
	SMTPPort string `env:"SMTP_PORT" env-default:"25"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM" env-default:"noreply@snapfeed.local"`
	To       string `env:"MAIL_TO" env-default:"support@snapfeed.local"`
}

type PhotoAPI struct {
	BaseURL string `env:"PHOTO_API_URL" env-default:"https://jsonplaceholder.typicode.com"`
}

type Scheduler struct {
	Timezone        string `env:"SCHEDULE_TZ" env-default:"UTC"`
	FetchPhotosSpec string `env:"SCHEDULE_FETCH_PHOTOS" env-default:"*/15 * * * *"`
	PidFile         string `env:"SCHEDULER_PID_FILE" env-default:"scheduler.pid"`
}

type Admin struct {
	Username string `env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `env:"ADMIN_PASSWORD" env-default:"admin"`
}

type Config struct {
	ConfigDatabase ConfigDatabase
	Cache          Cache
	HTTPServer     HTTPServer
	AsynqConfig    AsynqConfig
	Mail           Mail
	PhotoAPI       PhotoAPI
	Scheduler      Scheduler
	Admin          Admin
}

var cfg Config

// Get reads the config from the environment once per value change. Queue
// weights come from WQ_QUEUES as a JSON object, e.g.
// {"critical":6,"default":3,"low":1}.
func Get() Config {
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic(err)
	}

	if str := os.Getenv("WQ_QUEUES"); str != "" {
		if err := json.Unmarshal([]byte(str), &cfg.AsynqConfig.Queues); err != nil {
			panic("invalid WQ_QUEUES: " + err.Error())
		}
	}

	if len(cfg.AsynqConfig.Queues) == 0 {
		cfg.AsynqConfig.Queues = AsynqQueues{"critical": 6, "default": 3, "low": 1}
	}

	if !cfg.AsynqConfig.Queues.IsValid() {
		panic("invalid WQ_QUEUES: weights must be positive")
	}

	return cfg
}

// SetConfig overrides the process config; used by tests.
func SetConfig(c Config) {
	cfg = c
}
