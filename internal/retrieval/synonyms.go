package retrieval

// synonym maps a surface form found in query text to a canonical crop
// identifier. Tables are ordered slices, not maps, because crop
// detection returns the first surface form found and that order must be
// deterministic.
type synonym struct {
	surface string
	crop    string
}

var cropSynonyms = map[string][]synonym{
	"en": {
		{"rice", "rice"}, {"paddy", "rice"}, {"wheat", "wheat"}, {"corn", "corn"}, {"maize", "corn"},
		{"barley", "barley"}, {"oats", "oats"}, {"millet", "millet"}, {"quinoa", "quinoa"},
		{"soybeans", "soybeans"}, {"soy", "soybeans"}, {"chickpeas", "chickpeas"}, {"lentils", "lentils"},
		{"beans", "beans"}, {"peas", "peas"}, {"groundnut", "groundnut"}, {"peanut", "groundnut"},
		{"tomato", "tomatoes"}, {"tomatoes", "tomatoes"}, {"potato", "potatoes"}, {"potatoes", "potatoes"},
		{"onion", "onions"}, {"onions", "onions"}, {"carrot", "carrots"}, {"carrots", "carrots"},
		{"cabbage", "cabbage"}, {"lettuce", "lettuce"}, {"spinach", "spinach"}, {"broccoli", "broccoli"},
		{"apple", "apples"}, {"apples", "apples"}, {"orange", "oranges"}, {"oranges", "oranges"},
		{"banana", "bananas"}, {"bananas", "bananas"}, {"grape", "grapes"}, {"grapes", "grapes"},
		{"mango", "mango"}, {"papaya", "papaya"}, {"pineapple", "pineapple"},
		{"cotton", "cotton"}, {"sugarcane", "sugarcane"}, {"coffee", "coffee"}, {"tea", "tea"},
		{"tobacco", "tobacco"}, {"rubber", "rubber"},
	},
	"ta": {
		{"அரிசி", "rice"}, {"நெல்", "rice"}, {"கோதுமை", "wheat"}, {"சோளம்", "corn"},
		{"கேழ்வரகு", "millet"}, {"பார்லி", "barley"}, {"வெண்ணையடுங்", "barley"},
		{"சோயாபீன்", "soybeans"}, {"கொண்டைக்கடலை", "chickpeas"}, {"பருப்பு", "lentils"},
		{"தக்காளி", "tomatoes"}, {"உருளைக்கிழங்கு", "potatoes"}, {"வெங்காயம்", "onions"},
		{"கேரட்", "carrots"}, {"முட்டைக்கோஸ்", "cabbage"}, {"கீரை", "spinach"},
		{"ஆப்பிள்", "apples"}, {"ஆரஞ்சு", "oranges"}, {"வாழைப்பழம்", "bananas"},
		{"திராட்சை", "grapes"}, {"மாம்பழம்", "mango"}, {"பப்பாளி", "papaya"},
		{"பருத்தி", "cotton"}, {"கரும்பு", "sugarcane"}, {"காபி", "coffee"}, {"தேயிலை", "tea"},
	},
	"te": {
		{"వరి", "rice"}, {"బియ్యం", "rice"}, {"గోధుమ", "wheat"}, {"మొక్కజొన్న", "corn"},
		{"జొన్న", "millet"}, {"బార్లీ", "barley"}, {"వోట్స్", "oats"},
		{"సోయాబీన్స్", "soybeans"}, {"శనగలు", "chickpeas"}, {"మసూర్", "lentils"},
		{"టమోటా", "tomatoes"}, {"బంగాళాదుంప", "potatoes"}, {"ఉల్లిపాయలు", "onions"},
		{"క్యారెట్", "carrots"}, {"కాబేజీ", "cabbage"}, {"పాలకూర", "spinach"},
		{"ఆపిల్స్", "apples"}, {"నారింజలు", "oranges"}, {"అరటిపండ్లు", "bananas"},
		{"ద్రాక్షలు", "grapes"}, {"మామిడిపండు", "mango"}, {"బొప్పాయి", "papaya"},
		{"పత్తి", "cotton"}, {"చెరకు", "sugarcane"}, {"కాఫీ", "coffee"}, {"తేనీరు", "tea"},
	},
	"ml": {
		{"അരി", "rice"}, {"നെൽ", "rice"}, {"ഗോതമ്പ്", "wheat"}, {"ചോളം", "corn"},
		{"കേഴ്വരകു", "millet"}, {"ബാർലി", "barley"}, {"ഓട്സ്", "oats"},
		{"സോയാബീൻ", "soybeans"}, {"ചെറുപയർ", "chickpeas"}, {"പയർ", "lentils"},
		{"തക്കാളി", "tomatoes"}, {"ഉരുളക്കിഴങ്ങ്", "potatoes"}, {"ഉള്ളി", "onions"},
		{"കാരറ്റ്", "carrots"}, {"കാബേജ്", "cabbage"}, {"ചീര", "spinach"},
		{"ആപ്പിൾ", "apples"}, {"ഓറഞ്ച്", "oranges"}, {"വാഴപ്പഴം", "bananas"},
		{"മുന്തിരി", "grapes"}, {"മാമ്പഴം", "mango"}, {"പപ്പായ", "papaya"},
		{"പരുത്തി", "cotton"}, {"കരിമ്പ്", "sugarcane"}, {"കാപ്പി", "coffee"}, {"ചായ", "tea"},
	},
	"hi": {
		{"चावल", "rice"}, {"धान", "rice"}, {"गेहूं", "wheat"}, {"मक्का", "corn"},
		{"बाजरा", "millet"}, {"जौ", "barley"}, {"जई", "oats"},
		{"सोयाबीन", "soybeans"}, {"चना", "chickpeas"}, {"मसूर", "lentils"},
		{"टमाटर", "tomatoes"}, {"आलू", "potatoes"}, {"प्याज", "onions"},
		{"गाजर", "carrots"}, {"पत्तागोभी", "cabbage"}, {"पालक", "spinach"},
		{"सेब", "apples"}, {"संतरा", "oranges"}, {"केला", "bananas"},
		{"अंगूर", "grapes"}, {"आम", "mango"}, {"पपीता", "papaya"},
		{"कपास", "cotton"}, {"गन्ना", "sugarcane"}, {"कॉफी", "coffee"}, {"चाय", "tea"},
	},
}

var agricultureKeywords = map[string][]string{
	"en": {
		"crop", "farming", "agriculture", "plant", "soil", "fertilizer", "pest", "disease",
		"irrigation", "harvest", "seed", "growth", "cultivation", "farm", "field",
		"pesticide", "herbicide", "organic", "yield", "planting", "sowing", "tractor",
		"compost", "manure", "greenhouse", "nursery", "pruning", "grafting", "weather",
		"climate", "rain", "drought", "water", "nitrogen", "phosphorus", "potassium",
		"ph", "acidity", "alkaline", "mulch", "weeds", "insects", "fungus", "bacteria",
		"rice", "wheat", "corn", "barley", "oats", "tomato", "potato", "onion", "carrot",
		"apple", "orange", "banana", "grape", "cotton", "sugarcane", "coffee", "tea",
		"beans", "peas", "lentil", "soybean", "cabbage", "lettuce", "spinach", "mango",
	},
	"ta": {
		"பயிர்", "விவசாயம்", "வேளாண்மை", "தாவரம்", "மண்", "உரம்", "பூச்சி", "நோய்",
		"நீர்ப்பாசனம்", "அறுவடை", "விதை", "வளர்ச்சி", "சாகுபடி", "வயல்", "அரிசி", "நெல்",
		"கோதுமை", "தக்காளி", "உருளைக்கிழங்கு", "வெங்காயம்", "கேரட்", "ஆப்பிள்", "பருத்தி",
		"பூச்சிக்கொல்லி", "களைக்கொல்லி", "கரிம", "விளைச்சல்", "நடவு", "கரும்பு", "காபி",
	},
	"te": {
		"పంట", "వ్యవసాయం", "మొక్క", "మట్టి", "ఎరువులు", "కీటకాలు", "వ్యాధి",
		"నీటిపారుదల", "కోత", "విత్తనం", "పెరుగుదల", "సాగు", "పొలం", "వరి", "గోధుమ",
		"టమోటా", "బంగాళాదుంప", "ఉల్లిపాయలు", "క్యారెట్", "ఆపిల్స్", "పత్తి", "చెరకు",
	},
	"ml": {
		"വിള", "കൃഷി", "കാർഷികം", "ചെടി", "മണ്ണ്", "വളം", "കീടം", "രോഗം",
		"ജലസേചനം", "വിളവെടുപ്പ്", "വിത്ത്", "വളർച്ച", "വയൽ", "അരി", "ഗോതമ്പ്",
		"തക്കാളി", "ഉരുളക്കിഴങ്ങ്", "ഉള്ളി", "കാരറ്റ്", "ആപ്പിൾ", "പരുത്തി", "കരിമ്പ്",
	},
	"hi": {
		"फसल", "खेती", "कृषि", "पौधा", "मिट्टी", "खाद", "कीट", "बीमारी",
		"सिंचाई", "कटाई", "बीज", "वृद्धि", "खेत", "चावल", "गेहूं",
		"टमाटर", "आलू", "प्याज", "गाजर", "सेब", "कपास", "गन्ना",
	},
}

var agriculturePhrases = map[string][]string{
	"en": {"grow", "plant", "farm", "soil", "water", "sun", "season", "harvest", "food production", "agricultural"},
	"ta": {"வளர்", "நட", "பயிர்", "உணவு", "மழை", "காலநிலை"},
	"te": {"పెరుగు", "నాట", "పంట", "ఆహారం", "వర్షం", "వాతావరణం"},
	"ml": {"വളർ", "നട", "വിള", "ഭക്ഷണം", "മഴ", "കാലാവസ്ഥ"},
	"hi": {"उग", "लगा", "फसल", "भोजन", "बारिश", "मौसम"},
}

// Topic keyword lists for fallback classification. Checked in order:
// fertilizer, pest, disease, then general.
var fertilizerKeywords = []string{"fertilizer", "urea", "dap", "nutrients", "உரம்", "ఎరువులు", "വളം", "खाद"}
var pestKeywords = []string{"pest", "insect", "bug", "spray", "பூச்சி", "కీటకాలు", "കീടം", "कीट"}
var diseaseKeywords = []string{"disease", "fungus", "rot", "blight", "நோய்", "వ్యాధి", "രോഗം", "बीमारी"}
