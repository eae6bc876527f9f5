package knowledge

import "github.com/1Percent-hub/ScholarHub/internal/engine/classify"

// Suggested is the pool of follow-up questions sampled into every reply.
var Suggested = []string{
	"How far is the Sun from Earth?",
	"Why is the sky blue?",
	"What is a black hole?",
	"How do bees make honey?",
	"Who was Shakespeare?",
	"What is the speed of light?",
	"How many planets are there?",
	"Why do we have seasons?",
	"What is DNA?",
	"Tell me a joke",
	"What is the capital of Japan?",
	"How does the internet work?",
	"What is photosynthesis?",
	"When did dinosaurs live?",
	"What is the largest animal?",
	"What is the capital of France?",
	"How does a piano work?",
	"What caused World War II?",
	"What is machine learning?",
	"Why does it rain?",
	"What is the Great Wall of China?",
	"How do vaccines work?",
	"Tell me a fun fact",
	"What is the speed of sound?",
	"Who invented the internet?",
	"What is the largest ocean?",
	"How many bones are in the human body?",
	"What is the Fibonacci sequence?",
	"What is climate change?",
	"Where does chocolate come from?",
}

// TopicExamples pairs each domain with two example questions quoted in the
// no-match fallback, indexed by classify.Topic.
var TopicExamples = [classify.NumTopics][2]string{
	classify.Space:   {"What is a black hole?", "How far is the Sun?"},
	classify.Animal:  {"Tell me about dolphins", "What is the fastest animal?"},
	classify.Body:    {"How does the heart work?", "What are vitamins?"},
	classify.Science: {"What is gravity?", "How do magnets work?"},
	classify.Geo:     {"What is the capital of France?", "Where is Mount Everest?"},
	classify.History: {"When did World War II end?", "Who invented the telephone?"},
	classify.Tech:    {"How does the internet work?", "What is AI?"},
	classify.Food:    {"Where does chocolate come from?", "What is vitamin C?"},
	classify.Math:    {"What is pi?", "What is the Fibonacci sequence?"},
}

// TypeExamples holds fallback example questions for question types whose
// queries carry no recognizable topic. Types without entries get no hint.
var TypeExamples = map[classify.Type][2]string{
	classify.Who:   {"Who invented the light bulb?", "Who wrote Romeo and Juliet?"},
	classify.Where: {"Where is the Eiffel Tower?", "What is the capital of Japan?"},
	classify.When:  {"When did the Titanic sink?", "When did humans land on the Moon?"},
	classify.How:   {"How do planes fly?", "How does the heart work?"},
}
