package agent

import (
	"errors"
	"time"

	"github.com/nguyentantai21042004/video-digest/internal/logger"
)

// Options configures an Agent.
type Options struct {
	Transcripts TranscriptProvider
	Generator   Generator
	// Languages is the caption preference order. Defaults to pt, en.
	Languages []string
	// Key derives the run key. Defaults to UniqueKey.
	Key           KeyFunc
	CheckpointTTL time.Duration
	// Timeout bounds a whole run when positive.
	Timeout time.Duration
	Logger  logger.Logger
}

type implAgent struct {
	transcripts TranscriptProvider
	generator   Generator
	languages   []string
	key         KeyFunc
	timeout     time.Duration
	checkpoints *checkpointStore
	logger      logger.Logger
}

// New creates an Agent from opts.
func New(opts Options) (Agent, error) {
	if opts.Transcripts == nil {
		return nil, errors.New("agent: transcript provider is required")
	}
	if opts.Generator == nil {
		return nil, errors.New("agent: generator is required")
	}

	languages := opts.Languages
	if len(languages) == 0 {
		languages = []string{"pt", "en"}
	}
	key := opts.Key
	if key == nil {
		key = UniqueKey
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &implAgent{
		transcripts: opts.Transcripts,
		generator:   opts.Generator,
		languages:   append([]string(nil), languages...),
		key:         key,
		timeout:     opts.Timeout,
		checkpoints: newCheckpointStore(opts.CheckpointTTL),
		logger:      log,
	}, nil
}
