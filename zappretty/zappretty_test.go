package zappretty

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	gofuzz "github.com/google/gofuzz"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

var (
	epoch  = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	header = fmt.Sprintf("\x1b[37m[%s]\x1b[0m \x1b[32mINFO \x1b[0m \x1b[90mmain\x1b[0m \x1b[90m(foo.go:42)\x1b[0m \x1b[97mhello world\x1b[0m ", epoch.Format(timeFormat))
	entry  = zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       epoch,
		LoggerName: "main",
		Message:    "hello world",
		Caller: zapcore.EntryCaller{
			Defined:  true,
			File:     "foo.go",
			Line:     42,
			Function: "foo.Bar",
		},
		Stack: "foo",
	}
	testcases = []struct {
		name   string
		fields []zapcore.Field
		want   string
	}{
		{
			name: "info with caller",
			want: header + "\n",
		},
		{
			name:   "with fields",
			fields: []zapcore.Field{zap.String("set", "evens()"), zap.Int("n", 2)},
			want:   header + "\x1b[36m{\"set\":\"evens()\",\"n\":2}\x1b[0m\n",
		},
	}
)

func testEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		TimeKey:        "ts",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func TestMain(m *testing.M) {
	color.NoColor = false
	goleak.VerifyTestMain(m)
}

func TestPrettyOutput(t *testing.T) {
	for _, tc := range testcases {
		encoder := NewCLIEncoder(testEncoderConfig())

		t.Run(tc.name, func(t *testing.T) {
			out, err := encoder.EncodeEntry(entry, tc.fields)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, out.String(), "Unexpected output")
		})
	}
}

func TestContextFields(t *testing.T) {
	cfg := testEncoderConfig()
	cfg.StacktraceKey = "stack"

	encoder := NewCLIEncoder(cfg)
	encoder.AddString("set", "odds()")

	clone := encoder.Clone()
	clone.AddInt("n", 3)

	out, err := clone.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Equal(t, header+"\x1b[36m{\"set\":\"odds()\",\"n\":3}\x1b[0m\n\x1b[90mfoo\x1b[0m\n", out.String())

	// The original encoder does not see fields added to the clone.
	out, err = encoder.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Equal(t, header+"\x1b[36m{\"set\":\"odds()\"}\x1b[0m\n\x1b[90mfoo\x1b[0m\n", out.String())
}

func TestRegister(t *testing.T) {
	cfg := zap.NewDevelopmentConfig()
	require.NoError(t, Register(cfg.EncoderConfig))
	require.NoError(t, Register(cfg.EncoderConfig))

	cfg.Encoding = Name
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	require.NoError(t, err)
	logger.Debug("registered")
}

func TestFuzzLog(t *testing.T) {
	defer goleak.VerifyNone(t)

	atom := zap.NewAtomicLevel()
	out := &zaptest.Buffer{}

	leveler := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= atom.Level()
	})

	core := zapcore.NewCore(NewCLIEncoder(zap.NewProductionEncoderConfig()), zapcore.Lock(out), leveler)

	logger := zap.New(core).Named("zappretty")
	defer logger.Sync()

	corpus := make([]string, 0)

	f := gofuzz.New()

	for i := 0; i < 1000; i++ {
		var s string

		f.Fuzz(&s)
		corpus = append(corpus, s)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			logger.Info(corpus[i], zap.Int("i", i))
		}
	}()

	for i := 0; i < 1000; i++ {
		logger.Info(corpus[i])
	}

	wg.Wait()

	assert.Equal(t, 2000, strings.Count(out.String(), "zappretty"))
}
