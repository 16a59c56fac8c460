package source

import (
	"context"
	"strings"
	"time"
)

// knowledgeEntry maps query substrings to a builder for the structured
// answer. Builders take the current time so the clock entries stay pure.
type knowledgeEntry struct {
	terms []string
	build func(now time.Time) []Field
}

// Knowledge answers from a static table. It is free, instant and
// deterministic, which is why the compiler consults it first.
type Knowledge struct {
	entries []knowledgeEntry
	now     func() time.Time
}

// NewKnowledge builds the provider with the default table and wall clock.
func NewKnowledge() *Knowledge {
	return &Knowledge{entries: defaultKnowledge, now: time.Now}
}

// NewKnowledgeWithClock is like NewKnowledge but with an injectable clock,
// used by tests and by callers that need reproducible time answers.
func NewKnowledgeWithClock(now func() time.Time) *Knowledge {
	return &Knowledge{entries: defaultKnowledge, now: now}
}

func (k *Knowledge) Name() string { return "Built-in Knowledge" }

// Lookup matches the query against each entry's terms with case-insensitive
// containment, in table order. No I/O, never fails.
func (k *Knowledge) Lookup(_ context.Context, query string) (*Result, error) {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return nil, nil
	}
	for _, entry := range k.entries {
		for _, term := range entry.terms {
			if strings.Contains(q, term) {
				return &Result{
					Source: k.Name(),
					Kind:   KindStructured,
					Fields: entry.build(k.now()),
				}, nil
			}
		}
	}
	return nil, nil
}

func staticFields(fields ...Field) func(time.Time) []Field {
	return func(time.Time) []Field { return fields }
}

var defaultKnowledge = []knowledgeEntry{
	{
		terms: []string{"npu", "neural processing unit"},
		build: staticFields(
			Field{"Definition", "Neural Processing Unit (NPU) is a specialized microprocessor designed to accelerate artificial intelligence and machine learning computations."},
			Field{"Details", "NPUs are optimized for neural network operations like matrix multiplications and convolutions. They are found in modern smartphones, laptops and dedicated AI chips."},
			Field{"Applications", "On-device AI tasks such as image recognition, natural language processing, voice assistants and real-time translation."},
			Field{"Advantages", "More energy-efficient than CPUs or GPUs for AI workloads, keeps data on the device and avoids cloud round-trips."},
		),
	},
	{
		terms: []string{"machine learning"},
		build: staticFields(
			Field{"Definition", "Machine Learning is a subset of AI that enables computers to learn and improve from data without explicit programming."},
			Field{"Types", "Supervised learning (labeled data), unsupervised learning (pattern finding), reinforcement learning (reward-based)."},
			Field{"Applications", "Recommendation systems, image recognition, natural language processing, predictive analytics."},
		),
	},
	{
		terms: []string{"artificial intelligence"},
		build: staticFields(
			Field{"Definition", "Artificial Intelligence (AI) is the simulation of human intelligence in machines programmed to think and learn like humans."},
			Field{"Types", "Narrow AI (specific tasks), general AI (human-level, not yet achieved), super AI (theoretical)."},
			Field{"Applications", "Virtual assistants, recommendation systems, autonomous vehicles, medical diagnosis, language translation."},
			Field{"Technologies", "Machine learning, deep learning, neural networks, natural language processing, computer vision."},
		),
	},
	{
		terms: []string{"python programming", "python language"},
		build: staticFields(
			Field{"Definition", "Python is a high-level, interpreted programming language known for its simplicity and readability."},
			Field{"Uses", "Web development, data science, AI and machine learning, automation, scientific computing."},
			Field{"Advantages", "Beginner-friendly syntax, extensive libraries, large community, rapid development."},
		),
	},
	{
		terms: []string{"what time", "current time", "time is it"},
		build: func(now time.Time) []Field {
			return []Field{{"Definition", "Current time: " + now.Format("3:04 PM on Monday, January 2, 2006")}}
		},
	},
	{
		terms: []string{"what date", "today's date", "date today"},
		build: func(now time.Time) []Field {
			return []Field{{"Definition", "Today is " + now.Format("Monday, January 2, 2006")}}
		},
	},
	{
		terms: []string{"weather"},
		build: staticFields(
			Field{"Definition", "Live weather data is not available here. Check a weather app or weather.com for current conditions in your area."},
		),
	},
}
