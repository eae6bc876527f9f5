package knowledge

// table is the answer base. Keyword phrases are authored lowercase in the
// same canonical form the normalizer produces, so substring matching works
// without re-normalizing. A few phrases carry deliberate spaces ("hi ",
// " hi") to avoid firing inside longer words.
var table = []Entry{
	// Greetings and social
	{Keywords: []string{"hello", "hi ", " hi", "hey", "howdy", "greetings", "hiya"}, Replies: []string{
		"Hey! I'm Scholar. What can I do for you? Ask me about anything: science, history, animals, tech, or fun facts!",
		"Hi there! I'm Scholar. What would you like to know? I can help with loads of topics.",
	}},
	{Keywords: []string{"bye", "goodbye", "see you", "later", "cya"}, Replies: []string{
		"Goodbye! Have a great day. Come back anytime you have questions.",
		"See you later! Feel free to return whenever you're curious about something.",
	}},
	{Keywords: []string{"thanks", "thank you", "thx", "cheers", "ty"}, Replies: []string{
		"You're welcome! Happy to help.",
		"Anytime! Ask again if you have more questions.",
	}},
	{Keywords: []string{"help", "what can you do", "what do you know"}, Replies: []string{
		"I can answer questions on lots of topics: space, Earth, animals, the human body, science, technology, history, geography, health, music, sports, maths, and fun facts. Just ask in plain English!",
	}},
	{Keywords: []string{"who are you", "what are you", "what is your name", "scholar"}, Replies: []string{
		"I'm Scholar! I'm here to help with questions about science, history, tech, animals, and tons more. What can I do for you?",
		"I'm Scholar, your friendly study bot with a big knowledge base. Ask me anything and I'll do my best to answer!",
	}},
	{Keywords: []string{"who made you", "who created you", "who built you", "who is your creator", "your creator", "your maker", "who programmed you", "who coded you", "who developed you", "how was this made"}, Replies: []string{
		"I'm Scholar! I was built by the ScholarHub team as a study companion. What can I do for you?",
		"The ScholarHub team made me, and I'm here to help with any questions!",
	}},
	{Keywords: []string{"how are you", "how have you been", "how you been", "how are things", "how is it going", "how goes it"}, Replies: []string{
		"I'm doing great, thanks for asking! I'm Scholar. What can I do for you?",
		"All good on my end! What would you like to know? I'm Scholar and I'm ready to help.",
	}},
	{Keywords: []string{"whats up", "what is up", "wassup", "sup", "yo ", "good morning", "good evening", "good afternoon", "good night", "gday"}, Replies: []string{
		"Hey! I'm Scholar. What can I do for you? Ask me anything: science, history, fun facts, or just chat!",
		"Hi there! I'm Scholar. What would you like to know?",
	}},
	{Keywords: []string{"explain", "tell me about", "give me info", "teach me", "learn about", "what do you know about"}, Replies: []string{
		"I'd love to explain! Tell me the topic, like 'Explain black holes', 'Tell me about Rome', or 'What do you know about dolphins?' and I'll dive in.",
	}},
	{Keywords: []string{"difference between", "whats the difference", "different from", "vs ", " versus ", "compare"}, Replies: []string{
		"I can compare things! Try: 'What's the difference between DNA and RNA?', 'Mars vs Earth', or 'Compare X and Y'. What do you want to compare?",
	}},
	{Keywords: []string{"is it true", "is that true", "fact check", "true or false"}, Replies: []string{
		"I can help with that! Ask me something like 'Is it true that bats are blind?' or 'Is it true that we only use 10% of our brain?' and I'll give you the facts.",
	}},
	{Keywords: []string{"something interesting", "interesting thing", "cool fact", "learn something", "teach me something"}, Replies: []string{
		"Sure! Try: 'Tell me something interesting about space', 'Give me a cool fact about animals', or 'Teach me something about history'. What topic?",
	}},
	{Keywords: []string{"tell me more", "more info", "elaborate", "go on", "what else"}, Replies: []string{
		"I'd be happy to go deeper! Could you say which topic? For example: 'Tell me more about black holes' or 'More about the Roman Empire.'",
		"Sure! Which part would you like more detail on? Just name the topic or ask a more specific question.",
	}},
	{Keywords: []string{"why", "how come", "explain why"}, Replies: []string{
		"I'd need a bit more detail: 'why' or 'how come' about what? Try asking a full question and I'll do my best to answer!",
	}},

	// Space
	{Keywords: []string{"speed of light", "how fast is light", "light speed"}, Replies: []string{
		"Light travels at about 299,792 kilometres per second (or roughly 186,282 miles per second) in a vacuum. Nothing with mass can go that fast.",
	}},
	{Keywords: []string{"how far is the sun", "distance to sun", "earth to sun"}, Replies: []string{
		"On average, Earth is about 150 million kilometres (93 million miles) from the Sun. That distance is defined as one astronomical unit (1 AU).",
	}},
	{Keywords: []string{"how many planets", "planets in solar system", "solar system"}, Replies: []string{
		"There are eight planets in our solar system: Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, and Neptune. Pluto is now classified as a dwarf planet.",
	}},
	{Keywords: []string{"black hole", "black holes", "what is a black hole"}, Replies: []string{
		"A black hole is a region of space where gravity is so strong that nothing, not even light, can escape. They form when very massive stars collapse at the end of their lives.",
		"Black holes are created when massive stars run out of fuel and collapse. The gravity is so intense that not even light can escape, hence 'black'.",
	}},
	{Keywords: []string{"moon landing", "land on the moon", "apollo", "first man on moon"}, Replies: []string{
		"Humans first landed on the Moon on July 20, 1969, during NASA's Apollo 11 mission. Neil Armstrong and Buzz Aldrin walked on the surface while Michael Collins orbited above.",
	}},
	{Keywords: []string{"big bang", "how did the universe start", "origin of universe"}, Replies: []string{
		"The Big Bang is the leading theory: the universe began as an extremely hot, dense point about 13.8 billion years ago and has been expanding and cooling ever since.",
	}},
	{Keywords: []string{"mars", "red planet", "planet mars"}, Replies: []string{
		"Mars is the fourth planet from the Sun, often called the Red Planet because of its rusty colour from iron oxide. It has two small moons, Phobos and Deimos, and we've sent many rovers there.",
	}},
	{Keywords: []string{"galaxy", "milky way", "our galaxy"}, Replies: []string{
		"The Milky Way is our galaxy, a huge spiral of stars, gas, and dust. The Sun is one of roughly 100 to 400 billion stars in it, and we're about 27,000 light-years from the centre.",
	}},
	{Keywords: []string{"saturn", "rings of saturn"}, Replies: []string{
		"Saturn is the sixth planet and the second largest. Its spectacular rings are made of ice and rock. Saturn has over 80 moons; Titan is the largest and has a thick atmosphere.",
	}},
	{Keywords: []string{"jupiter", "largest planet", "gas giant"}, Replies: []string{
		"Jupiter is the largest planet in our solar system, a gas giant. It has a famous Great Red Spot (a storm), at least 80 moons, and no solid surface. Its gravity helps protect Earth by deflecting some asteroids.",
	}},
	{Keywords: []string{"venus", "planet venus"}, Replies: []string{
		"Venus is the second planet from the Sun and the hottest: thick clouds trap heat. It's similar in size to Earth but has a crushing atmosphere of carbon dioxide. It's often called Earth's twin.",
	}},
	{Keywords: []string{"mercury", "planet mercury"}, Replies: []string{
		"Mercury is the smallest and closest planet to the Sun. It has extreme temperature swings, almost no atmosphere, and a heavily cratered surface. A year on Mercury is only about 88 Earth days.",
	}},
	{Keywords: []string{"neptune", "uranus", "ice giant"}, Replies: []string{
		"Neptune and Uranus are ice giants: cold, windy planets with thick atmospheres. Neptune is the farthest known planet. Both were discovered with telescopes; Neptune's existence was predicted from Uranus's orbit.",
	}},
	{Keywords: []string{"asteroid", "asteroids", "asteroid belt"}, Replies: []string{
		"Asteroids are rocky leftovers from the early solar system. Most orbit in the asteroid belt between Mars and Jupiter. Some cross Earth's orbit; tracking them helps assess impact risk.",
	}},
	{Keywords: []string{"comet", "comets", "halley"}, Replies: []string{
		"Comets are icy bodies that release gas and dust when they approach the Sun, forming a visible tail. Many orbit the Sun from the outer solar system. Halley's Comet returns roughly every 76 years.",
	}},
	{Keywords: []string{"solar eclipse", "lunar eclipse", "eclipse"}, Replies: []string{
		"A solar eclipse happens when the Moon blocks the Sun from Earth's view. A lunar eclipse is when Earth's shadow falls on the Moon. Both occur when Sun, Earth, and Moon align.",
	}},
	{Keywords: []string{"international space station", "iss", "space station"}, Replies: []string{
		"The ISS is a habitable satellite in low Earth orbit. It's a partnership of NASA, Roscosmos, ESA, JAXA, and CSA. Astronauts live there for months, doing science in microgravity.",
	}},
	{Keywords: []string{"hubble", "space telescope"}, Replies: []string{
		"The Hubble Space Telescope orbits Earth and has taken stunning images of distant galaxies, nebulae, and planets. Launched in 1990, it has been serviced by astronauts and is still in use.",
	}},
	{Keywords: []string{"james webb", "jwst", "webb telescope"}, Replies: []string{
		"The James Webb Space Telescope (JWST) is NASA's powerful infrared observatory, launched in 2021. It looks at the earliest galaxies, star formation, and exoplanet atmospheres.",
	}},
	{Keywords: []string{"exoplanet", "exoplanets", "planets outside solar system"}, Replies: []string{
		"Exoplanets are planets that orbit stars other than the Sun. Thousands have been found, some in the 'habitable zone' where liquid water could exist. We detect them by watching stars wobble or dim as planets pass by.",
	}},
	{Keywords: []string{"supernova", "supernovae", "star explosion"}, Replies: []string{
		"A supernova is the explosive death of a massive star. It briefly outshines a whole galaxy and spreads heavy elements into space. The Crab Nebula is a supernova remnant.",
	}},
	{Keywords: []string{"dark matter", "dark energy"}, Replies: []string{
		"Dark matter is invisible stuff that doesn't emit light but has gravity; we see its effects on galaxies. Dark energy is thought to be driving the universe's accelerated expansion. Together they make up most of the universe's content, but we still don't know what they are.",
	}},
	{Keywords: []string{"how old is the earth", "age of earth"}, Replies: []string{
		"Earth is about 4.54 billion years old. Scientists work this out from radiometric dating of rocks and meteorites.",
	}},

	// Earth and weather
	{Keywords: []string{"why is the sky blue", "sky blue"}, Replies: []string{
		"The sky looks blue because sunlight is scattered by the gases in our atmosphere. Shorter (blue) wavelengths scatter more than longer (red) ones, so we see blue when we look up.",
	}},
	{Keywords: []string{"rainbow", "rainbows"}, Replies: []string{
		"A rainbow appears when sunlight is refracted and reflected inside water droplets. You see a band of colours because each colour bends slightly differently.",
	}},
	{Keywords: []string{"earthquake", "earthquakes"}, Replies: []string{
		"Earthquakes happen when tectonic plates suddenly slip past each other, releasing energy as seismic waves. They're measured with seismometers; moment magnitude describes their size.",
	}},
	{Keywords: []string{"volcano", "volcanoes"}, Replies: []string{
		"Volcanoes are openings in the Earth's crust where molten rock, gas, and ash can escape. They form near plate boundaries or hotspots. Famous examples include Mount Fuji, Vesuvius, and Kilauea.",
	}},
	{Keywords: []string{"ocean", "oceans", "deepest ocean", "largest ocean", "mariana trench"}, Replies: []string{
		"There are five main oceans: Pacific, Atlantic, Indian, Southern, and Arctic. The Pacific is the largest and deepest; the Mariana Trench in the Pacific is the deepest point on Earth, about 11 km down.",
	}},
	{Keywords: []string{"climate change", "global warming"}, Replies: []string{
		"Climate change is long-term change in global temperatures and weather patterns. Largely driven by human activities, it leads to rising seas, more extreme weather, and shifts in ecosystems.",
	}},
	{Keywords: []string{"why does it rain", "how does rain form"}, Replies: []string{
		"Rain forms when water vapour in the air cools and condenses into droplets. Clouds are made of these droplets; when they get heavy enough, they fall as rain (or snow if it's cold enough).",
	}},
	{Keywords: []string{"thunder", "lightning", "thunderstorm"}, Replies: []string{
		"Lightning is a giant spark of electricity between clouds or cloud and ground. Thunder is the sound of that air expanding rapidly. Light travels faster than sound, so you see lightning before you hear thunder.",
	}},
	{Keywords: []string{"seasons", "why do we have seasons"}, Replies: []string{
		"Seasons happen because Earth's axis is tilted. As we orbit the Sun, different parts get more or less direct sunlight. When your hemisphere is tilted toward the Sun, it's summer; away, it's winter.",
	}},
	{Keywords: []string{"leap year", "why leap year"}, Replies: []string{
		"A leap year has an extra day (February 29) to keep the calendar in sync with the solar year. Earth takes about 365.25 days to orbit the Sun, so we add a day every four years.",
	}},

	// Animals
	{Keywords: []string{"fastest animal", "cheetah"}, Replies: []string{
		"The cheetah is the fastest land animal, reaching about 70 mph (113 km/h) in short bursts. The peregrine falcon is even faster in a dive, over 200 mph (320 km/h).",
	}},
	{Keywords: []string{"biggest animal", "largest animal", "blue whale"}, Replies: []string{
		"The blue whale is the largest animal ever known. It can grow to about 30 metres long and weigh over 170 tonnes. Its heart alone is about the size of a small car.",
	}},
	{Keywords: []string{"do dogs dream", "dogs dream", "dog", "dogs"}, Replies: []string{
		"Dogs go through similar sleep stages to us, including REM, when dreaming happens. Twitching and quiet barks during sleep are often signs they're dreaming.",
	}},
	{Keywords: []string{"how do birds fly", "birds fly"}, Replies: []string{
		"Birds fly thanks to lightweight skeletons, strong breast muscles, and wings that act like airfoils. They push air down and back, and the reaction force lifts them.",
	}},
	{Keywords: []string{"honeybee", "bees", "how do bees make honey"}, Replies: []string{
		"Bees make honey from flower nectar. They collect it, add enzymes in their stomachs, and store it in honeycomb. They fan it with their wings to evaporate water until it becomes thick honey.",
	}},
	{Keywords: []string{"dinosaurs", "dinosaur", "when did dinosaurs live"}, Replies: []string{
		"Dinosaurs lived from about 230 million years ago until about 66 million years ago, when a huge asteroid impact led to a mass extinction. Birds are the only living dinosaurs.",
	}},
	{Keywords: []string{"elephant", "elephants"}, Replies: []string{
		"Elephants are the largest land animals. They're highly social, have excellent memory, and use tools. African elephants have larger ears; Asian elephants are slightly smaller.",
	}},
	{Keywords: []string{"octopus", "octopuses"}, Replies: []string{
		"Octopuses are molluscs with eight arms, three hearts, and blue blood. They're very intelligent, can change colour and texture for camouflage, and can squeeze through tiny gaps.",
	}},
	{Keywords: []string{"penguin", "penguins"}, Replies: []string{
		"Penguins are flightless birds that live mostly in the Southern Hemisphere. They're adapted to cold: dense feathers, fat, and huddling. The emperor penguin breeds in the harsh Antarctic winter.",
	}},
	{Keywords: []string{"dolphin", "dolphins"}, Replies: []string{
		"Dolphins are intelligent marine mammals. They use echolocation, live in social groups, and have been seen using tools. They're in the same order as whales, the cetaceans.",
	}},
	{Keywords: []string{"shark", "sharks"}, Replies: []string{
		"Sharks are fish with cartilaginous skeletons. They've been around for hundreds of millions of years. Most are not dangerous to humans.",
	}},
	{Keywords: []string{"cat", "cats", "do cats purr"}, Replies: []string{
		"Cats purr when content, but also when stressed or in pain. The mechanism isn't fully understood. Cats are obligate carnivores and were domesticated thousands of years ago.",
	}},
	{Keywords: []string{"tiger", "tigers"}, Replies: []string{
		"Tigers are the largest wild cats. They live in Asia and are endangered. Each tiger's stripe pattern is unique. They're solitary hunters and can swim well.",
	}},
	{Keywords: []string{"lion", "lions"}, Replies: []string{
		"Lions are big cats that live in prides in Africa and a small part of India. Males have manes. They hunt together and are symbols of strength in many cultures.",
	}},
	{Keywords: []string{"bat", "bats"}, Replies: []string{
		"Bats are the only mammals that truly fly. Most use echolocation to navigate and find insects at night. They're important pollinators and seed dispersers.",
	}},
	{Keywords: []string{"giraffe", "giraffes"}, Replies: []string{
		"Giraffes are the tallest land animals, with very long necks and legs. They eat leaves from tall trees. Their necks have the same number of vertebrae as most mammals: seven.",
	}},
	{Keywords: []string{"kangaroo", "kangaroos"}, Replies: []string{
		"Kangaroos are Australian marsupials that hop on strong back legs. Females carry young in a pouch. They're herbivores and can reach high speeds over short distances.",
	}},
	{Keywords: []string{"panda", "pandas", "giant panda"}, Replies: []string{
		"Giant pandas live in Chinese bamboo forests. They eat almost only bamboo and are endangered. They have a distinctive black-and-white coat and are a symbol of conservation.",
	}},

	// Human body and health
	{Keywords: []string{"how many bones", "bones in body", "human skeleton"}, Replies: []string{
		"Adults have 206 bones. Babies are born with around 300; some fuse as they grow. Bones support the body, protect organs, store minerals, and make blood cells.",
	}},
	{Keywords: []string{"heart", "human heart", "heart beat"}, Replies: []string{
		"The human heart has four chambers and pumps blood around the body. At rest it beats about 60 to 100 times per minute. Over a lifetime it can beat billions of times.",
	}},
	{Keywords: []string{"brain", "human brain", "how does the brain work"}, Replies: []string{
		"The brain has roughly 86 billion neurons that communicate via electrical and chemical signals. It controls thought, memory, emotion, movement, and body functions.",
	}},
	{Keywords: []string{"blood", "what is blood"}, Replies: []string{
		"Blood carries oxygen, nutrients, and hormones, and removes waste. It's made of red cells, white cells, platelets, and plasma. Adults have about 5 litres.",
	}},
	{Keywords: []string{"sleep", "why do we sleep", "why sleep"}, Replies: []string{
		"Sleep restores the body and brain, helps memory and learning, supports the immune system, and regulates mood. Not getting enough is linked to health problems and poorer thinking.",
	}},
	{Keywords: []string{"dna", "what is dna", "genes"}, Replies: []string{
		"DNA carries genetic instructions. It's a double helix of four bases (A, T, G, C). Genes are segments of DNA that code for proteins. Almost all cells in your body have the same DNA.",
	}},
	{Keywords: []string{"vaccine", "vaccines", "how do vaccines work"}, Replies: []string{
		"Vaccines train your immune system to recognise a germ without causing the disease. They contain weakened, inactivated, or partial versions of a pathogen so your body can build defences in advance.",
	}},
	{Keywords: []string{"vitamin c", "vitamins", "vitamin d"}, Replies: []string{
		"Vitamins are nutrients the body needs in small amounts. Vitamin C supports the immune system and is in citrus and vegetables. Vitamin D helps bones and immunity; we get it from sunlight and some foods.",
	}},
	{Keywords: []string{"calories", "what is a calorie"}, Replies: []string{
		"A calorie is a unit of energy. In food, we usually mean kilocalories (kcal). We need calories to fuel our body; balance intake with activity for healthy weight.",
	}},
	{Keywords: []string{"protein", "what is protein"}, Replies: []string{
		"Protein is a nutrient made of amino acids. It builds and repairs muscles and tissues. Good sources include meat, fish, eggs, beans, and dairy.",
	}},
	{Keywords: []string{"water", "how much water to drink", "stay hydrated"}, Replies: []string{
		"Guidelines often suggest about 2 to 2.5 litres of fluid per day for adults. Needs vary with activity, climate, and health. Thirst and pale urine are rough guides.",
	}},
	{Keywords: []string{"exercise", "why exercise", "benefits of exercise"}, Replies: []string{
		"Exercise strengthens the heart, muscles, and bones; improves mood and sleep; and helps control weight. Aim for at least 150 minutes of moderate activity per week, plus strength work.",
	}},

	// Science
	{Keywords: []string{"gravity", "what is gravity"}, Replies: []string{
		"Gravity is the force that pulls objects with mass toward each other. Earth's gravity keeps us on the ground and holds the Moon in orbit. Einstein described it as curvature of space-time.",
	}},
	{Keywords: []string{"atom", "atoms", "what is an atom"}, Replies: []string{
		"Atoms are the building blocks of matter. Each has a nucleus (protons and neutrons) and electrons around it. Different elements have different numbers of protons.",
	}},
	{Keywords: []string{"photosynthesis", "how do plants make food"}, Replies: []string{
		"Plants use sunlight, water, and carbon dioxide to make sugar and release oxygen. This happens mainly in the leaves, in structures called chloroplasts, using the green pigment chlorophyll.",
	}},
	{Keywords: []string{"evolution", "what is evolution"}, Replies: []string{
		"Evolution is the change in species over time through inherited traits. Those better suited to the environment tend to survive and reproduce. All life on Earth shares common ancestors.",
	}},
	{Keywords: []string{"electricity", "how does electricity work"}, Replies: []string{
		"Electricity is the flow of charged particles, usually electrons. In wires, a voltage pushes electrons along a circuit. It can produce light, heat, and motion.",
	}},
	{Keywords: []string{"speed of sound", "how fast is sound"}, Replies: []string{
		"The speed of sound in air at room temperature is about 343 metres per second (767 mph). It travels faster in liquids and solids.",
	}},
	{Keywords: []string{"magnet", "magnetism", "magnets", "how do magnets work"}, Replies: []string{
		"Magnetism comes from moving electric charges. Earth has a magnetic field (from its molten core) that protects us from some solar radiation and guides compasses. Magnets have north and south poles.",
	}},
	{Keywords: []string{"periodic table", "elements", "chemical elements"}, Replies: []string{
		"The periodic table lists all known chemical elements by atomic number. Elements in the same column share similar properties. There are 118 known elements.",
	}},
	{Keywords: []string{"newton", "laws of motion"}, Replies: []string{
		"Newton's three laws: (1) An object stays at rest or in motion unless a force acts on it. (2) Force equals mass times acceleration. (3) For every action there's an equal and opposite reaction.",
	}},
	{Keywords: []string{"einstein", "relativity", "e=mc2"}, Replies: []string{
		"Einstein's theory of relativity changed physics. Special relativity says the speed of light is constant and E=mc2. General relativity describes gravity as the curvature of space-time by mass and energy.",
	}},
	{Keywords: []string{"bacteria", "germs"}, Replies: []string{
		"Bacteria are single-celled organisms; some cause disease, many are harmless or helpful. Viruses are smaller; they need a host to reproduce.",
	}},

	// Technology
	{Keywords: []string{"what is python", "python programming"}, Replies: []string{
		"Python is a popular programming language known for clear, readable syntax. It's used for web development, data science, AI, automation, and more. It's a great first language to learn.",
	}},
	{Keywords: []string{"what is go", "golang", "go programming"}, Replies: []string{
		"Go is a programming language from Google, built for simplicity and fast, concurrent servers. It compiles to a single binary and powers a lot of cloud infrastructure.",
	}},
	{Keywords: []string{"what is ai", "artificial intelligence", "machine learning"}, Replies: []string{
		"Artificial intelligence (AI) is when machines perform tasks that usually need human intelligence. Machine learning is a type of AI where systems learn from data instead of being programmed step-by-step.",
	}},
	{Keywords: []string{"internet", "how does the internet work"}, Replies: []string{
		"The internet is a global network of connected computers. Data is split into packets, sent via routers and cables, and reassembled at the destination. Protocols like TCP/IP and DNS make this possible.",
	}},
	{Keywords: []string{"computer virus", "malware"}, Replies: []string{
		"A computer virus or malware is software designed to harm or misuse your system. Protect yourself with antivirus software, updates, and careful use of links and downloads.",
	}},
	{Keywords: []string{"api", "what is an api"}, Replies: []string{
		"An API (Application Programming Interface) lets different software talk to each other. Web APIs use URLs and return data, often JSON. They're how apps fetch weather, payments, or other services.",
	}},
	{Keywords: []string{"cloud", "cloud computing"}, Replies: []string{
		"Cloud computing means using remote servers over the internet for storage, processing, and apps. You pay for what you use instead of owning the hardware.",
	}},
	{Keywords: []string{"password", "strong password", "passwords"}, Replies: []string{
		"A strong password is long, mixed, and unique. Use a password manager. Enable two-factor authentication where possible to add security.",
	}},
	{Keywords: []string{"bitcoin", "cryptocurrency", "crypto"}, Replies: []string{
		"Bitcoin is a decentralised digital currency using blockchain. Cryptocurrencies use cryptography and aren't issued by a central bank. They're volatile and used for investment and some payments.",
	}},

	// Geography
	{Keywords: []string{"largest country", "biggest country"}, Replies: []string{
		"Russia is the largest country by area (about 17.1 million square kilometres), spanning Europe and Asia. Canada is second, then the USA and China.",
	}},
	{Keywords: []string{"capital of france", "france capital", "paris"}, Replies: []string{
		"The capital of France is Paris. It's a major global city known for culture, art, fashion, and landmarks like the Eiffel Tower and the Louvre.",
	}},
	{Keywords: []string{"capital of japan", "japan capital", "tokyo"}, Replies: []string{
		"The capital of Japan is Tokyo. It's one of the world's most populous cities and a major financial and cultural centre.",
	}},
	{Keywords: []string{"capital of england", "london", "uk capital"}, Replies: []string{
		"The capital of England and the United Kingdom is London. It's a major global city for finance, culture, and history, with landmarks like Big Ben and the Tower of London.",
	}},
	{Keywords: []string{"capital of usa", "washington dc", "america capital"}, Replies: []string{
		"The capital of the United States is Washington, D.C. New York is the largest city but not the capital.",
	}},
	{Keywords: []string{"capital of australia", "australia capital", "canberra"}, Replies: []string{
		"The capital of Australia is Canberra. It was chosen as a compromise between Sydney and Melbourne. Parliament and many national institutions are there.",
	}},
	{Keywords: []string{"capital of germany", "berlin"}, Replies: []string{
		"The capital of Germany is Berlin. It's the largest city in Germany and a major European centre for politics, culture, and history.",
	}},
	{Keywords: []string{"capital of italy", "rome", "italy capital"}, Replies: []string{
		"The capital of Italy is Rome. It was the heart of the Roman Empire and is home to the Vatican, the Colosseum, and countless historic sites.",
	}},
	{Keywords: []string{"capital of china", "beijing", "china capital"}, Replies: []string{
		"The capital of China is Beijing. It's a huge city with landmarks like the Forbidden City and the Great Wall nearby.",
	}},
	{Keywords: []string{"capital of india", "india capital", "new delhi"}, Replies: []string{
		"The capital of India is New Delhi. It's part of the larger Delhi metro area and houses the government.",
	}},
	{Keywords: []string{"how many countries", "countries in the world"}, Replies: []string{
		"There are about 195 countries today, depending on how you count. The number changes when borders or recognition change.",
	}},
	{Keywords: []string{"longest river", "nile", "amazon river"}, Replies: []string{
		"The Nile is often cited as the longest river (about 6,650 km), and the Amazon is the largest by water flow. Both are among the most important rivers on Earth.",
	}},
	{Keywords: []string{"mount everest", "everest", "tallest mountain"}, Replies: []string{
		"Mount Everest is Earth's highest peak above sea level, 8,849 metres (29,032 ft). It's in the Himalayas on the border of Nepal and China.",
	}},
	{Keywords: []string{"sahara", "largest desert"}, Replies: []string{
		"The Sahara is the world's largest hot desert, covering much of North Africa. The Antarctic is larger but is a cold, icy desert.",
	}},
	{Keywords: []string{"amazon rainforest", "amazon jungle"}, Replies: []string{
		"The Amazon rainforest is the largest tropical rainforest, mostly in Brazil. It holds huge biodiversity and affects global climate. Deforestation is a major environmental concern.",
	}},

	// History
	{Keywords: []string{"world war 2", "ww2", "second world war"}, Replies: []string{
		"World War II (1939-1945) was a global conflict involving most of the world's nations. It was the deadliest war in history and led to the founding of the UN.",
	}},
	{Keywords: []string{"world war 1", "ww1", "first world war"}, Replies: []string{
		"World War I (1914-1918) was a global conflict triggered by the assassination of Archduke Franz Ferdinand. Trench warfare and new weapons led to millions of deaths and major political changes.",
	}},
	{Keywords: []string{"who invented the internet", "internet invented"}, Replies: []string{
		"The internet grew from research in the 1960s and 70s. Key developments include ARPANET, TCP/IP, and the World Wide Web, which Tim Berners-Lee invented at CERN in 1989.",
	}},
	{Keywords: []string{"who invented the telephone", "telephone"}, Replies: []string{
		"Alexander Graham Bell was awarded the first patent for the telephone in 1876, though inventors like Elisha Gray and Antonio Meucci worked on similar devices.",
	}},
	{Keywords: []string{"ancient rome", "roman empire"}, Replies: []string{
		"Ancient Rome grew from a city-state into an empire that dominated the Mediterranean and beyond. It left a lasting legacy in law, language, engineering, and culture.",
	}},
	{Keywords: []string{"egypt", "ancient egypt", "pyramids"}, Replies: []string{
		"Ancient Egypt was a civilisation along the Nile, known for pharaohs, hieroglyphics, and monuments like the pyramids at Giza. The Great Pyramid was built around 2560 BCE.",
	}},
	{Keywords: []string{"who discovered america", "columbus"}, Replies: []string{
		"Indigenous peoples had been in the Americas for thousands of years. In 1492, Christopher Columbus's voyage from Spain reached the Caribbean, which led to lasting European contact.",
	}},
	{Keywords: []string{"industrial revolution"}, Replies: []string{
		"The Industrial Revolution was the shift to machine-based manufacturing, starting in Britain in the late 1700s. Steam power, factories, and railways changed work, cities, and society.",
	}},
	{Keywords: []string{"renaissance", "the renaissance"}, Replies: []string{
		"The Renaissance was a period of cultural and intellectual revival in Europe, roughly the 14th to 17th centuries. Figures like Leonardo da Vinci and Michelangelo defined the era.",
	}},
	{Keywords: []string{"ancient greece", "greece history"}, Replies: []string{
		"Ancient Greece gave us democracy, philosophy, drama, and the Olympics. City-states like Athens and Sparta flourished. Greek ideas influenced Rome and later the whole of Western culture.",
	}},
	{Keywords: []string{"printing press", "gutenberg"}, Replies: []string{
		"The printing press was developed by Johannes Gutenberg in the 1440s. Moveable type made books cheaper and more widespread, spreading ideas and helping trigger the Renaissance and Reformation.",
	}},
	{Keywords: []string{"cold war"}, Replies: []string{
		"The Cold War was a period of tension (roughly 1947-1991) between the USA and the Soviet Union. No direct large-scale war, but a nuclear arms race, proxy wars, and the space race.",
	}},
	{Keywords: []string{"great wall of china"}, Replies: []string{
		"The Great Wall of China is a series of fortifications built over centuries to protect against invasions. Most of what we see today is from the Ming dynasty.",
	}},

	// Arts and music
	{Keywords: []string{"beethoven"}, Replies: []string{
		"Ludwig van Beethoven was a German composer (1770-1827). He wrote nine symphonies and the famous 'Ode to Joy' in his Ninth. He went deaf but kept composing.",
	}},
	{Keywords: []string{"mozart", "who was mozart"}, Replies: []string{
		"Wolfgang Amadeus Mozart (1756-1791) was an Austrian composer. He wrote over 600 works and was a child prodigy. He's one of the most famous classical composers.",
	}},
	{Keywords: []string{"shakespeare", "who was shakespeare"}, Replies: []string{
		"William Shakespeare (1564-1616) was an English playwright and poet. He wrote Hamlet, Romeo and Juliet, Macbeth, and many more. His works are still performed worldwide.",
	}},
	{Keywords: []string{"mona lisa", "da vinci"}, Replies: []string{
		"The Mona Lisa is a painting by Leonardo da Vinci, in the Louvre in Paris. It's famous for its subject's smile and gaze. Leonardo was also a scientist and inventor.",
	}},
	{Keywords: []string{"guitar", "how does a guitar work"}, Replies: []string{
		"A guitar makes sound when strings vibrate. Acoustic guitars amplify it with a hollow body; electric guitars use pickups and an amplifier. Frets change the pitch by shortening the string.",
	}},
	{Keywords: []string{"piano", "how does a piano work"}, Replies: []string{
		"A piano has strings struck by hammers when you press keys. The harder you press, the louder the sound. The piano has 88 keys and can play melody and harmony.",
	}},

	// Sports and games
	{Keywords: []string{"olympics", "olympic games", "when were the olympics"}, Replies: []string{
		"The modern Olympic Games began in 1896 in Athens. They're held every four years, with Summer and Winter Games alternating every two years.",
	}},
	{Keywords: []string{"world cup", "fifa", "football world cup"}, Replies: []string{
		"The FIFA World Cup is the biggest international football tournament. It's held every four years. Countries qualify; one hosts. Millions watch the final.",
	}},
	{Keywords: []string{"chess", "how to play chess"}, Replies: []string{
		"Chess is a two-player board game. Each side has 16 pieces. You move to attack the opponent's king. Checkmate wins. It's played worldwide for fun and in competitions.",
	}},
	{Keywords: []string{"marathon", "why is a marathon 26 miles"}, Replies: []string{
		"The marathon is 42.195 km (26.2 miles). The distance comes from the legend of a Greek messenger who ran from Marathon to Athens. The modern length was set at the 1908 London Olympics.",
	}},

	// Maths
	{Keywords: []string{"pi", "what is pi", "value of pi"}, Replies: []string{
		"Pi is the ratio of a circle's circumference to its diameter. It's about 3.14159 and goes on forever without repeating. It appears in geometry, physics, and engineering.",
	}},
	{Keywords: []string{"prime number", "prime numbers", "what is a prime"}, Replies: []string{
		"A prime number is greater than 1 and has no positive divisors except 1 and itself. Examples: 2, 3, 5, 7, 11. Primes are building blocks in number theory and cryptography.",
	}},
	{Keywords: []string{"infinity", "what is infinity"}, Replies: []string{
		"Infinity isn't a normal number; it's the idea of something without end. In maths we use it in limits, sets, and calculus. There are different 'sizes' of infinity in set theory.",
	}},
	{Keywords: []string{"fibonacci", "fibonacci sequence"}, Replies: []string{
		"The Fibonacci sequence starts 0, 1 and each number is the sum of the two before: 0, 1, 1, 2, 3, 5, 8, 13 and so on. It appears in nature, maths, and art.",
	}},

	// Food
	{Keywords: []string{"chocolate", "where does chocolate come from"}, Replies: []string{
		"Chocolate comes from cacao beans, the seeds of the cacao tree grown near the equator. The beans are fermented, dried, roasted, and ground into cocoa mass, then mixed with sugar and milk.",
	}},
	{Keywords: []string{"fruit", "vegetable", "fruits and vegetables"}, Replies: []string{
		"Botanically, a fruit grows from a flower and contains seeds; vegetables are other plant parts like roots, stems, and leaves. That's why tomatoes are technically fruits.",
	}},

	// Fun
	{Keywords: []string{"fun fact", "random fact", "tell me something"}, Replies: []string{
		"Here's one: honey never spoils. Archaeologists have found edible honey in ancient Egyptian tombs. Or: a group of flamingos is called a 'flamboyance.' Want more on a specific topic?",
	}},
	{Keywords: []string{"joke", "tell me a joke"}, Replies: []string{
		"Why did the scarecrow win an award? He was outstanding in his field! Want another, or shall we switch to facts?",
	}},
	{Keywords: []string{"another joke", "more jokes", "one more joke"}, Replies: []string{
		"What do you call a bear with no teeth? A gummy bear! Or: why don't scientists trust atoms? Because they make up everything!",
	}},
	{Keywords: []string{"weird fact", "strange fact", "weird facts"}, Replies: []string{
		"Bananas are berries, but strawberries aren't. Or: a day on Venus is longer than its year; it rotates very slowly. Want more?",
	}},

	// Smalltalk closers
	{Keywords: []string{"yes", "yeah", "yep", "ok", "okay"}, Replies: []string{
		"Great! What's your question?",
	}},
	{Keywords: []string{"no "}, Replies: []string{
		"No problem. If you think of something, just ask!",
	}},
}
