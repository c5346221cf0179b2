package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/klokku/calview/pkg/projection"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

type Application struct {
	Server   Server   `koanf:"server"`
	Events   Events   `koanf:"events"`
	Calendar Calendar `koanf:"calendar"`
	Session  Session  `koanf:"session"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Events struct {
	// File is a YAML or JSON event map keyed by DD-MM-YYYY. Empty means no events.
	File string `koanf:"file"`
}

// Calendar holds how many events a cell shows before collapsing into "+N more".
type Calendar struct {
	MonthCap int `koanf:"monthcap"`
	WeekCap  int `koanf:"weekcap"`
}

// Session bounds the in-memory calendar sessions. Zero disables a limit.
type Session struct {
	IdleTTL time.Duration `koanf:"idlettl"`
	Max     int           `koanf:"max"`
}

func defaults() Application {
	return Application{
		Server: Server{Addr: ":8181"},
		Calendar: Calendar{
			MonthCap: projection.DefaultMonthCap,
			WeekCap:  projection.DefaultWeekCap,
		},
		Session: Session{
			IdleTTL: 30 * time.Minute,
			Max:     1000,
		},
	}
}

// Load layers defaults, the YAML file at path (optional) and CALVIEW_* environment variables.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "CALVIEW_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "CALVIEW_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	app.normalize()

	return app, nil
}

func (a *Application) normalize() {
	d := defaults()
	if a.Server.Addr == "" {
		a.Server.Addr = d.Server.Addr
	}
	if a.Calendar.MonthCap <= 0 {
		log.Warnf("invalid calendar.monthcap %d, using %d", a.Calendar.MonthCap, d.Calendar.MonthCap)
		a.Calendar.MonthCap = d.Calendar.MonthCap
	}
	if a.Calendar.WeekCap <= 0 {
		log.Warnf("invalid calendar.weekcap %d, using %d", a.Calendar.WeekCap, d.Calendar.WeekCap)
		a.Calendar.WeekCap = d.Calendar.WeekCap
	}
	if a.Session.IdleTTL < 0 {
		log.Warnf("invalid session.idlettl %s, using %s", a.Session.IdleTTL, d.Session.IdleTTL)
		a.Session.IdleTTL = d.Session.IdleTTL
	}
	if a.Session.Max < 0 {
		log.Warnf("invalid session.max %d, using %d", a.Session.Max, d.Session.Max)
		a.Session.Max = d.Session.Max
	}
}
