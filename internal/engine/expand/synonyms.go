package expand

// synonymGroups links words that should match each other ("biggest" finds
// "largest" entries, "tell me" matches "give me" intent, irregular verb
// forms share a group). Groups are applied in declaration order over the
// growing result set, so a later group can chain off words a former group
// pulled in. Multi-word members never match single tokens and act as
// documentation of intent.
var synonymGroups = [][]string{
	{"big", "large", "huge", "biggest", "largest", "major", "massive"},
	{"small", "tiny", "little", "smallest", "minor"},
	{"fast", "quick", "speed", "quickly", "rapid"},
	{"old", "ancient", "age", "older", "oldest", "elder"},
	{"new", "modern", "recent", "newest", "latest"},
	{"good", "great", "best", "nice", "fine", "awesome"},
	{"bad", "worst", "poor", "terrible"},
	{"many", "much", "lots", "number", "how many", "amount", "count"},
	{"first", "1st", "original", "initial"},
	{"last", "final", "latest", "end"},
	{"tell", "say", "give", "show", "explain", "teach"},
	{"want", "like", "need", "would like", "love"},
	{"know", "learn", "understand", "find out", "figure out"},
	{"ask", "asking", "asked", "question", "questions"},
	{"help", "assist", "support", "aid"},
	{"make", "makes", "made", "creating", "create"},
	{"work", "works", "working", "function", "functions"},
	{"get", "got", "getting", "obtain", "have"},
	{"way", "ways", "method", "how"},
	{"thing", "things", "stuff", "something"},
	{"person", "people", "human", "someone", "who"},
	{"place", "places", "where", "location"},
	{"time", "when", "moment", "day"},
	{"reason", "why", "cause", "because"},
	{"same", "similar", "like", "alike"},
	{"different", "difference", "differ", "other"},
	{"right", "correct", "true", "yes"},
	{"wrong", "incorrect", "false", "no"},
	{"run", "runs", "running", "ran"},
	{"go", "goes", "going", "went"},
	{"think", "thinks", "thinking", "thought", "thoughts"},
	{"eat", "eats", "eating", "ate", "eaten", "food"},
	{"see", "sees", "seeing", "saw", "seen", "sight", "look", "looks", "looking"},
	{"use", "uses", "using", "used", "usage"},
	{"live", "lives", "living", "lived", "life", "alive"},
	{"come", "comes", "coming", "came"},
	{"start", "starts", "starting", "started", "begin", "begins", "beginning", "began"},
	{"end", "ends", "ending", "ended", "finish", "finishes", "finished"},
	{"change", "changes", "changing", "changed"},
	{"call", "calls", "calling", "called", "name", "named"},
	{"try", "tries", "trying", "tried"},
	{"leave", "leaves", "leaving", "left"},
	{"keep", "keeps", "keeping", "kept"},
	{"let", "lets", "letting"},
	{"begin", "begins", "beginning", "began", "begun", "start"},
	{"seem", "seems", "seeming", "seemed"},
	{"help", "helps", "helping", "helped", "assist", "support"},
	{"talk", "talks", "talking", "talked", "speak", "speaks", "speaking", "spoke"},
	{"turn", "turns", "turning", "turned"},
	{"show", "shows", "showing", "showed", "shown"},
	{"hear", "hears", "hearing", "heard"},
	{"play", "plays", "playing", "played"},
	{"move", "moves", "moving", "moved", "movement"},
	{"believe", "believes", "believing", "believed"},
	{"bring", "brings", "bringing", "brought"},
	{"happen", "happens", "happening", "happened"},
	{"write", "writes", "writing", "wrote", "written"},
	{"provide", "provides", "providing", "provided"},
	{"sit", "sits", "sitting", "sat"},
	{"stand", "stands", "standing", "stood"},
	{"lose", "loses", "losing", "lost"},
	{"pay", "pays", "paying", "paid"},
	{"meet", "meets", "meeting", "met"},
	{"include", "includes", "including", "included"},
	{"continue", "continues", "continuing", "continued"},
	{"set", "sets", "setting"},
	{"learn", "learns", "learning", "learned", "learnt"},
	{"lead", "leads", "leading", "led"},
	{"watch", "watches", "watching", "watched"},
	{"stop", "stops", "stopping", "stopped"},
	{"follow", "follows", "following", "followed"},
	{"create", "creates", "creating", "created", "creation"},
	{"remember", "remembers", "remembering", "remembered"},
	{"understand", "understands", "understanding", "understood"},
	{"consider", "considers", "considering", "considered"},
	{"appear", "appears", "appearing", "appeared"},
	{"buy", "buys", "buying", "bought"},
	{"wait", "waits", "waiting", "waited"},
	{"serve", "serves", "serving", "served"},
	{"die", "dies", "dying", "died", "dead", "death"},
	{"send", "sends", "sending", "sent"},
	{"expect", "expects", "expecting", "expected"},
	{"build", "builds", "building", "built"},
	{"stay", "stays", "staying", "stayed"},
	{"fall", "falls", "falling", "fell", "fallen"},
	{"cut", "cuts", "cutting"},
	{"reach", "reaches", "reaching", "reached"},
	{"kill", "kills", "killing", "killed"},
	{"remain", "remains", "remaining", "remained"},
	{"suggest", "suggests", "suggesting", "suggested"},
	{"raise", "raises", "raising", "raised"},
	{"pass", "passes", "passing", "passed"},
	{"sell", "sells", "selling", "sold"},
	{"require", "requires", "requiring", "required"},
	{"report", "reports", "reporting", "reported"},
	{"decide", "decides", "deciding", "decided"},
	{"pull", "pulls", "pulling", "pulled"},
	{"offer", "offers", "offering", "offered"},
	{"accept", "accepts", "accepting", "accepted"},
	{"support", "supports", "supporting", "supported"},
	{"hit", "hits", "hitting"},
	{"produce", "produces", "producing", "produced"},
	{"eat", "eats", "eating", "ate", "eaten"},
	{"cover", "covers", "covering", "covered"},
	{"catch", "catches", "catching", "caught"},
	{"draw", "draws", "drawing", "drew", "drawn"},
	{"choose", "chooses", "choosing", "chose", "chosen"},
	{"grow", "grows", "growing", "grew", "grown"},
	{"break", "breaks", "breaking", "broke", "broken"},
	{"hold", "holds", "holding", "held"},
	{"carry", "carries", "carrying", "carried"},
	{"seek", "seeks", "seeking", "sought"},
	{"plan", "plans", "planning", "planned"},
	{"pick", "picks", "picking", "picked"},
	{"wish", "wishes", "wishing", "wished"},
	{"fight", "fights", "fighting", "fought"},
	{"win", "wins", "winning", "won"},
	{"beat", "beats", "beating", "beaten"},
	{"question", "questions", "ask", "asking", "query"},
	{"answer", "answers", "reply", "replies", "response"},
	{"study", "studying", "studied", "learn", "learning", "learned"},
	{"read", "reads", "reading"},
	{"discover", "discovered", "discovery", "find", "found"},
	{"invent", "invented", "invention", "create", "created"},
	{"animal", "animals", "creature", "creatures", "pet", "pets"},
	{"plant", "plants", "flower", "flowers", "tree", "trees"},
	{"food", "foods", "eat", "eating", "eaten"},
	{"drink", "drinks", "drinking", "drank", "drunk"},
	{"body", "bodies", "human", "humans", "health"},
	{"earth", "world", "planet", "planets", "globe"},
	{"space", "universe", "cosmos", "astronomy", "star", "stars"},
	{"country", "countries", "nation", "nations", "state"},
	{"city", "cities", "town", "towns", "place", "places"},
	{"year", "years", "date", "dates", "time", "times"},
	{"number", "numbers", "count", "counting", "amount"},
	{"part", "parts", "piece", "pieces", "section"},
	{"kind", "kinds", "type", "types", "sort", "sorts"},
	{"problem", "problems", "issue", "issues", "trouble"},
	{"idea", "ideas", "thought", "thoughts", "concept"},
	{"fact", "facts", "true", "truth", "real"},
	{"example", "examples", "instance", "instances"},
	{"reason", "reasons", "cause", "causes", "why"},
	{"result", "results", "effect", "effects", "outcome"},
	{"important", "importance", "significant", "key"},
	{"possible", "possibility", "maybe", "might"},
	{"different", "difference", "differ", "differs"},
	{"best", "better", "good", "great"},
	{"worst", "worse", "bad", "poor"},
	{"capital", "capitals", "city", "cities", "main city"},
	{"invent", "invented", "invention", "inventor", "create", "created"},
	{"largest", "biggest", "big", "large", "greatest"},
	{"smallest", "tiniest", "small", "little"},
	{"fastest", "quickest", "fast", "quick", "speed"},
	{"oldest", "old", "ancient", "age", "how old"},
	{"longest", "long", "length"},
	{"highest", "high", "tall", "tallest"},
	{"deepest", "deep", "depth"},
	{"hot", "hottest", "heat", "warm"},
	{"cold", "coldest", "cool", "freezing"},
	{"famous", "well-known", "known", "popular"},
	{"important", "significant", "major", "key"},
	{"first", "original", "beginning"},
	{"last", "final", "end"},
	{"number", "numbers", "how many", "count", "amount"},
	{"distance", "far", "how far", "away"},
	{"formula", "formulas", "equation", "chemical"},
	{"element", "elements", "chemical", "atom"},
	{"planet", "planets", "solar system", "space"},
	{"river", "rivers", "stream", "water"},
	{"mountain", "mountains", "peak", "summit"},
	{"ocean", "oceans", "sea", "seas"},
	{"animal", "animals", "creature", "species"},
	{"president", "presidents", "leader", "ruler"},
	{"war", "wars", "battle", "conflict"},
	{"book", "books", "author", "wrote"},
	{"painting", "paintings", "painted", "artist"},
	{"composer", "composers", "music", "composed"},
}
