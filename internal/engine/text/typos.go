package text

// typos maps common misspellings to their correct form so a mistyped query
// still matches. Applied whole-word after contraction expansion; like the
// contraction table, every value is a fixed point.
var typos = map[string]string{
	"teh": "the", "taht": "that", "becuase": "because", "becasue": "because",
	"recieve": "receive", "recieved": "received", "occured": "occurred",
	"seperate": "separate", "definately": "definitely", "accomodate": "accommodate",
	"occassion": "occasion", "neccessary": "necessary", "goverment": "government",
	"enviroment": "environment", "calender": "calendar", "wierd": "weird",
	"thier": "their", "adn": "and", "waht": "what",
	"whcih": "which", "whihc": "which", "liek": "like", "taek": "take",
	"reponse": "response", "responce": "response", "anser": "answer",
	"quesiton": "question", "questoin": "question", "sciene": "science",
	"sience": "science", "recomend": "recommend", "reccomend": "recommend",
	"happend": "happened", "begining": "beginning",
	"realy": "really", "realyl": "really", "probly": "probably", "probaly": "probably",
	"experiance": "experience", "occuring": "occurring",
	"refered": "referred", "refering": "referring", "occurence": "occurrence",
	"existance": "existence", "persistant": "persistent", "dependance": "dependence",
	"maintainance": "maintenance", "performence": "performance",
	"temperture": "temperature", "litrature": "literature",
	"seperately": "separately", "guarentee": "guarantee",
	"arguement": "argument", "judgement": "judgment", "developement": "development",
	"equiptment": "equipment", "acheive": "achieve",
	"freind": "friend", "freinds": "friends", "beleive": "believe",
	"concieve": "conceive", "percieve": "perceive",
	"caluclate": "calculate", "mathmatics": "mathematics", "sciense": "science",
	"bioligy": "biology", "chemisty": "chemistry", "physic": "physics",
	"histroy": "history",
	"infromation": "information", "availible": "available", "sucess": "success",
	"comunicate": "communicate", "occure": "occur", "persue": "pursue", "tommorrow": "tomorrow",
	"buisness": "business",
	"libary": "library", "relly": "really", "untill": "until", "wensday": "wednesday",
	"febuary": "february",
	"commited": "committed",
	"adress": "address", "embarass": "embarrass", "millenium": "millennium",
	"referance": "reference", "prefered": "preferred", "transfered": "transferred",
	"sucessful": "successful",
}
