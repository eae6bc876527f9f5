package classify

import (
	"math/bits"

	"github.com/1Percent-hub/ScholarHub/internal/engine/token"
)

// Topic is a subject domain.
type Topic int

const (
	Space Topic = iota
	Animal
	Body
	Science
	Geo
	History
	Tech
	Food
	Math

	NumTopics = int(Math) + 1
)

var topicNames = [NumTopics]string{"space", "animal", "body", "science", "geo", "history", "tech", "food", "math"}

func (tp Topic) String() string {
	if tp < 0 || int(tp) >= NumTopics {
		return "unknown"
	}
	return topicNames[tp]
}

// topicMembers lists the vocabulary of each domain. Multi-word members are
// tokenized at build time so "black hole" matches the single tokens "black"
// and "hole".
var topicMembers = [NumTopics][]string{
	Space:   {"space", "planet", "moon", "sun", "star", "galaxy", "mars", "earth", "orbit", "asteroid", "comet", "black hole", "solar", "nasa", "astronaut", "universe", "neptune", "uranus", "jupiter", "saturn", "venus", "mercury", "pluto"},
	Animal:  {"animal", "animals", "dog", "cat", "bird", "fish", "lion", "tiger", "bear", "elephant", "whale", "dolphin", "snake", "insect", "pet", "species", "mammal", "reptile", "amphibian"},
	Body:    {"body", "heart", "brain", "blood", "bone", "muscle", "health", "disease", "virus", "vaccine", "medicine", "doctor", "sick", "organ", "cell", "dna", "gene"},
	Science: {"science", "atom", "molecule", "gravity", "energy", "force", "physics", "chemistry", "biology", "experiment", "element", "reaction", "formula"},
	Geo:     {"country", "capital", "city", "ocean", "mountain", "river", "continent", "map", "geography", "desert", "forest", "lake"},
	History: {"history", "war", "invented", "discovered", "ancient", "century", "year", "emperor", "empire", "president", "king", "queen"},
	Tech:    {"computer", "internet", "phone", "robot", "code", "program", "digital", "wifi", "ai", "software"},
	Food:    {"food", "eat", "fruit", "vegetable", "recipe", "cook", "drink", "water", "vitamin", "protein", "calorie"},
	Math:    {"math", "maths", "number", "equation", "percent", "fraction", "geometry", "algebra", "pi"},
}

var topicWords = buildTopicWords()

func buildTopicWords() [NumTopics]token.Set {
	var out [NumTopics]token.Set
	for i, members := range topicMembers {
		s := make(token.Set, len(members))
		for _, m := range members {
			for _, w := range token.Split(m) {
				s[w] = struct{}{}
			}
		}
		out[i] = s
	}
	return out
}

// TopicSet is a bit set of topics.
type TopicSet uint16

// Has reports whether the set includes tp.
func (s TopicSet) Has(tp Topic) bool { return s&(1<<uint(tp)) != 0 }

// Count returns the number of topics in the set.
func (s TopicSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Shared returns how many topics the two sets have in common.
func (s TopicSet) Shared(o TopicSet) int { return bits.OnesCount16(uint16(s & o)) }

// Names returns the names of the topics in the set, in declaration order.
func (s TopicSet) Names() []string {
	if s == 0 {
		return nil
	}
	out := make([]string, 0, s.Count())
	for i := 0; i < NumTopics; i++ {
		if s.Has(Topic(i)) {
			out = append(out, topicNames[i])
		}
	}
	return out
}

// Topics returns the set of domains whose vocabulary intersects words.
func Topics(words token.Set) TopicSet {
	var out TopicSet
	for i := 0; i < NumTopics; i++ {
		if token.Intersection(words, topicWords[i]) > 0 {
			out |= 1 << uint(i)
		}
	}
	return out
}
