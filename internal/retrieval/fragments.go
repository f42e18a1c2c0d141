package retrieval

// Localized advice fragments appended to composed answers. Each map
// falls back to English for unknown languages. Fragment text carries a
// leading space so it can be concatenated directly onto the base answer.

var claySoilFragments = map[string]string{
	"en": " For clay soil: Good drainage system essential. Add organic matter to improve structure.",
	"ta": " களிமண் மண்ணுக்கு: நல்ல வடிகால் அமைப்பு அவசியம். கரிமப் பொருட்களைச் சேர்க்கவும்.",
	"te": " మట్టి మట్టికి: మంచి డ్రైనేజ్ వ్యవస్థ అవసరం. సేంద్రీయ పదార్థాలను కలపండి.",
	"ml": " കളിമണ്ണിന്: നല്ല ഡ്രെയിനേജ് സിസ്റ്റം ആവശ്യം. ജൈവവസ്തുക്കൾ ചേർക്കുക.",
	"hi": " चिकनी मिट्टी के लिए: अच्छी जल निकासी व्यवस्था जरूरी। जैविक पदार्थ मिलाएं।",
}

var sandySoilFragments = map[string]string{
	"en": " For sandy soil: Frequent irrigation needed. Add compost to retain nutrients.",
	"ta": " மணல் மண்ணுக்கு: அடிக்கடி நீர்ப்பாசனம் தேவை। கம்போஸ்ட் சேர்த்து ஊட்டச்சத்து தக்கவைக்கவும்.",
	"te": " ఇసుక మట్టికి: తరచుగా నీటిపారుదల అవసరం. కంపోస్ట్ చేర్చి పోషకాలను నిలుపుకోండి.",
	"ml": " മണൽമണ്ണിന്: ഇടയ്ക്കിടെ നനയ്ക്കണം. കമ്പോസ്റ്റ് ചേർത്ത് പോഷകങ്ങൾ നിലനിർത്തുക.",
	"hi": " रेतीली मिट्टी के लिए: बार-बार सिंचाई चाहिए। कंपोस्ट मिलाकर पोषक तत्व बनाए रखें।",
}

var smallLandFragments = map[string]string{
	"en": " For small land: Drip irrigation, vertical farming, soil mulching recommended.",
	"ta": " சிறிய நிலத்திற்கு: சொட்டு நீர்ப்பாசனம், செங்குத்து விவசாயம், மண்ணின் மல்ச்சிங் பரிந்துரைக்கப்படுகிறது.",
	"te": " చిన్న భూమికి: డ్రిప్ నీటిపారుదల, నిలువు వ్యవసాయం, మట్టి కవరింగ్ సిఫార్సు చేయబడింది.",
	"ml": " ചെറിയ ഭൂമിക്ക്: ഡ്രിപ്പ് ജലസേചനം, ലംബമായ കൃഷി, മണ്ണ് മൾച്ചിംഗ് ശുപാർശ ചെയ്യുന്നു.",
	"hi": " छोटी जमीन के लिए: ड्रिप सिंचाई, ऊर्ध्वाधर खेती, मिट्टी मल्चिंग की सिफारिश।",
}

var kharifFragments = map[string]string{
	"en": " Current Kharif season. Suitable time for rice, cotton, corn, sugarcane.",
	"ta": " தற்போது கரீப் பருவம். அரிசி, பருத்தி, சோளம், கரும்பு ஆகியவற்றுக்கு ஏற்ற காலம்.",
	"te": " ప్రస్తుతం ఖరీఫ్ సీజన్. వరి, పత్తి, మొక్కజొన్న, చెరకుకు అనువైన సమయం.",
	"ml": " ഇപ്പോൾ ഖരീഫ് സീസൺ. അരി, പരുത്തി, ചോളം, കരിമ്പ് എന്നിവയ്ക്ക് അനുയോജ്യമായ സമയം.",
	"hi": " अभी खरीफ मौसम। धान, कपास, मक्का, गन्ने के लिए उपयुक्त समय।",
}

var rabiFragments = map[string]string{
	"en": " Current Rabi season. Suitable time for wheat, barley, mustard, peas.",
	"ta": " தற்போது ரபி பருவம். கோதுமை, பார்லி, கடுகு, பட்டாணி ஆகியவற்றுக்கு ஏற்ற காலம்.",
	"te": " ప్రస్తుతం రబీ సీజన్. గోధుమ, బార్లీ, ఆవాలు, బఠానుల కోసం అనువైన సమయం.",
	"ml": " ഇപ്പോൾ റബീ സീസൺ. ഗോതമ്പ്, ബാർലി, കടുക്, പയർ എന്നിവയ്ക്ക് അനുയോജ്യമായ സമയം.",
	"hi": " अभी रबी मौसम। गेहूं, जौ, सरसों, मटर के लिए उपयुक्त समय।",
}

// Canned answers used when retrieval finds nothing relevant, keyed by
// language then topic.
var cannedAnswers = map[string]map[Topic]string{
	"en": {
		TopicGeneral:    "For general farming: 1) Test soil pH (6.0-7.5 optimal), 2) Use organic compost, 3) Follow proper irrigation schedule, 4) Monitor for pests. I can help with any crop - cereals (rice, wheat, corn), legumes (soybeans, chickpeas), vegetables (tomatoes, potatoes), fruits (apples, oranges), or cash crops (cotton, sugarcane).",
		TopicFertilizer: "Balanced NPK fertilizer guide: Most crops need 40kg Urea + 25kg DAP + 15kg MOP per acre. Split application - half at sowing, rest after 30-45 days. Organic options: compost, vermicompost, green manure.",
		TopicPest:       "Integrated pest management: 1) Neem oil spray (5ml/liter), 2) Remove affected parts, 3) Yellow sticky traps, 4) Beneficial insects, 5) Crop rotation. Specific treatments vary by crop and pest type.",
		TopicDisease:    "Disease prevention: 1) Proper spacing for air circulation, 2) Avoid overhead watering, 3) Remove infected parts immediately, 4) Copper-based fungicides for fungal issues, 5) Resistant varieties when available.",
	},
	"ta": {
		TopicGeneral:    "பொதுவான வேளாண்மைக்கு: 1) மண் pH சோதனை (6.0-7.5 சிறந்தது), 2) கரிம கம்போஸ்ட் பயன்படுத்தவும், 3) சரியான நீர்ப்பாசனம், 4) பூச்சிகள் கண்காணிப்பு. நான் அனைத்து பயிர்களுக்கும் உதவ முடியும் - தானியங்கள், பருப்பு வகைகள், காய்கறிகள், பழங்கள், பணப்பயிர்கள்.",
		TopicFertilizer: "சமச்சீர் NPK உரம்: பெரும்பாலான பயிர்களுக்கு ஏக்கருக்கு 40கிலோ யூரியா + 25கிலோ DAP + 15கிலோ MOP. பிரித்த பயன்பாடு - பாதி விதைக்கும்போது, மீதம் 30-45 நாட்களுக்குப் பிறகு.",
		TopicPest:       "ஒருங்கிணைந்த பூச்சி மேலாண்மை: 1) வேப்ப எண்ணெய் தெளிப்பு, 2) பாதிக்கப்பட்ட பகுதிகளை அகற்றவும், 3) மஞ்சள் ஒட்டும் பொறிகள், 4) பயன்படை பூச்சிகள், 5) பயிர் சுழற்சி.",
		TopicDisease:    "நோய் தடுப்பு: 1) காற்றோட்டத்திற்கு சரியான இடைவெளி, 2) இலைகளில் நேரடி நீர் தெளிப்பு தவிர்க்கவும், 3) பாதிக்கப்பட்ட பகுதிகளை உடனே அகற்றவும்.",
	},
	"te": {
		TopicGeneral:    "సాధారణ వ్యవసాయానికి: 1) మట్టి pH పరీక్ష (6.0-7.5 ఉత్తమం), 2) సేంద్రీయ కంపోస్ట్ ఉపయోగించండి, 3) సరైన నీటిపారుదల, 4) కీటకాల పర్యవేక్షణ. నేను అన్ని పంటలకు సహాయం చేయగలను.",
		TopicFertilizer: "సమతుల్య NPK ఎరువు: చాలా పంటలకు ఎకరకు 40కిలో యూరియా + 25కిలో DAP + 15కిలో MOP. విభజిత అప్లికేషన్ - సగం విత్తనాలో, మిగిలింది 30-45 రోజుల తర్వాత.",
		TopicPest:       "సమగ్ర కీటక నిర్వహణ: 1) వేప నూనె స్ప్రే, 2) ప్రభావిత భాగాలను తొలగించండి, 3) పసుపు జిగురు ఉచ్చులు, 4) ప్రయోజనకరమైన కీటకాలు.",
		TopicDisease:    "వ్యాధి నివారణ: 1) గాలి ప్రసరణ కోసం సరైన అంతరం, 2) పై నుండి నీరు పోయడం మానుకోండి, 3) సోకిన భాగాలను వెంటనే తొలగించండి.",
	},
	"ml": {
		TopicGeneral:    "പൊതുവായ കൃഷിക്ക്: 1) മണ്ണിന്റെ pH പരിശോധന (6.0-7.5 ഉത്തമം), 2) ജൈവ കമ്പോസ്റ്റ് ഉപയോഗിക്കുക, 3) ശരിയായ ജലസേചനം, 4) കീടങ്ങളുടെ നിരീക്ഷണം. എനിക്ക് എല്ലാ വിളകൾക്കും സഹായിക്കാൻ കഴിയും.",
		TopicFertilizer: "സമതുലിതമായ NPK വളം: മിക്ക വിളകൾക്കും ഏക്കറിന് 40കിലോ യൂറിയ + 25കിലോ DAP + 15കിലോ MOP. വിഭജിത പ്രയോഗം - പകുതി വിതയ്ക്കുമ്പോൾ, ബാക്കി 30-45 ദിവസങ്ങൾക്ക് ശേഷം.",
		TopicPest:       "സംയോജിത കീട പരിപാലനം: 1) വേപ്പെണ്ണ സ്പ്രേ, 2) ബാധിത ഭാഗങ്ങൾ നീക്കം ചെയ്യുക, 3) മഞ്ഞ ഒട്ടുന്ന കെണികൾ.",
		TopicDisease:    "രോഗ പ്രതിരോധം: 1) വായു സഞ്ചാരത്തിന് ശരിയായ അകലം, 2) മുകളിൽ നിന്ന് വെള്ളം ഒഴിക്കുന്നത് ഒഴിവാക്കുക, 3) രോഗബാധിത ഭാഗങ്ങൾ ഉടനെ നീക്കം ചെയ്യുക.",
	},
	"hi": {
		TopicGeneral:    "सामान्य कृषि के लिए: 1) मिट्टी pH जांच (6.0-7.5 आदर्श), 2) जैविक खाद का उपयोग, 3) उचित सिंचाई, 4) कीट निगरानी। मैं सभी फसलों के लिए मदद कर सकता हूं।",
		TopicFertilizer: "संतुलित NPK उर्वरक: अधिकांश फसलों के लिए प्रति एकड़ 40किलो यूरिया + 25किलो DAP + 15किलो MOP। विभाजित उपयोग - आधा बुआई के समय, बाकी 30-45 दिन बाद।",
		TopicPest:       "एकीकृत कीट प्रबंधन: 1) नीम तेल स्प्रे, 2) प्रभावित भागों को हटाएं, 3) पीले चिपचिपे जाल, 4) लाभकारी कीड़े।",
		TopicDisease:    "रोग रोकथाम: 1) हवा के संचार के लिए उचित दूरी, 2) ऊपर से पानी देना बचें, 3) संक्रमित भागों को तुरंत हटाएं।",
	},
}

// SafeAnswers are the last-resort responses when answer composition
// itself fails.
var SafeAnswers = map[string]string{
	"en": "I'm your comprehensive agriculture assistant for ALL crops worldwide. Ask me about: Cereals (rice, wheat, corn, barley), Legumes (soybeans, chickpeas, lentils), Vegetables (tomatoes, potatoes, onions), Fruits (apples, oranges, bananas), Cash crops (cotton, sugarcane, coffee). I provide soil, pest, fertilizer, and growing advice!",
	"ta": "நான் உலகளாவிய அனைத்து பயிர்களுக்கும் விரிவான வேளாண் உதவியாளர். என்னிடம் கேளுங்கள்: தானியங்கள், பருப்பு வகைகள், காய்கறிகள், பழங்கள், பணப்பயிர்கள் பற்றி.",
	"te": "నేను ప్రపంచవ్యాప్త అన్ని పంటలకు సమగ్ర వ్యవసాయ సహాయకుడను. నన్ను అడగండి: ధాన్యాలు, గింజలు, కూరగాయలు, పండ్లు, వాణిజ్య పంటల గురించి.",
	"ml": "ഞാൻ ലോകമെമ്പാടുമുള്ള എല്ലാ വിളകൾക്കും സമഗ്ര കാർഷിക സഹായിയാണ്. എന്നോട് ചോദിക്കുക: ധാന്യങ്ങൾ, പയർവർഗ്ഗങ്ങൾ, പച്ചക്കറികൾ, ഫലങ്ങൾ, വാണിജ്യ വിളകൾ.",
	"hi": "मैं दुनिया भर की सभी फसलों के लिए व्यापक कृषि सहायक हूं। मुझसे पूछें: अनाज, दालें, सब्जियां, फल, नकदी फसलों के बारे में।",
}

// SafeAnswer returns the last-resort answer for a language, falling
// back to English.
func SafeAnswer(language string) string {
	if ans, ok := SafeAnswers[language]; ok {
		return ans
	}
	return SafeAnswers["en"]
}

func localized(table map[string]string, language string) string {
	if s, ok := table[language]; ok {
		return s
	}
	return table["en"]
}
