package knowledge

// builtinKB is the embedded knowledge base used when no external source
// is configured or when loading an external source fails. Covers crops,
// soil types, irrigation methods, and common diseases in five languages.
var builtinKB = rawKB{
	"crops": {
		"rice": {
			"en": "Rice is a staple grain crop. Best grown in flooded fields. Requires 4-6 months growing season. Plant during monsoon. Harvest when grains turn golden. Major varieties: Basmati, Jasmine, Arborio.",
			"ta": "அரிசி ஒரு முக்கிய தானிய பயிர். வெள்ளம் நிறைந்த வயல்களில் சிறப்பாக வளரும். 4-6 மாத வளர்ச்சி காலம் தேவை। பருவமழைக் காலத்தில் நடவு செய்யவும்।",
			"te": "వరి ప్రధాన ధాన్య పంట. నీరు నిండిన పొలాల్లో బాగా పెరుగుతుంది. 4-6 నెలల పెరుగుదల కాలం అవసరం.",
			"ml": "അരി ഒരു പ്രധാന ധാന്യ വിള. വെള്ളം നിറഞ്ഞ വയലുകളിൽ നന്നായി വളരും. 4-6 മാസത്തെ വളർച്ചാകാലം ആവശ്യം।",
			"hi": "चावल एक मुख्य अनाज की फसल है। बाढ़ वाले खेतों में सबसे अच्छी तरह उगता है। 4-6 महीने की बढ़ने की अवधि चाहिए।",
		},
		"wheat": {
			"en": "Wheat is a major cereal grain. Grows best in temperate climates. Sow in October-November. Harvest in March-April. Requires well-drained soil.",
			"ta": "கோதுமை ஒரு முக்கிய தானிய பயிர். மிதமான காலநிலையில் சிறப்பாக வளரும். அக்டோபர்-நவம்பரில் விதைக்கவும்।",
			"te": "గోధుమ ప్రధాన ధాన్య పంట. సమశీతోష్ణ వాతావరణంలో బాగా పెరుగుతుంది।",
			"ml": "ഗോതമ്പ് ഒരു പ്രധാന ധാന്യ വിള. മിതശീതോഷ്ണ കാലാവസ്ഥയിൽ നന്നായി വളരും।",
			"hi": "गेहूं एक मुख्य अनाज है। समशीतोष्ण जलवायु में सबसे अच्छी तरह उगता है।",
		},
		"corn": {
			"en": "Corn/Maize is a versatile cereal crop. Requires warm climate and well-drained soil. Plant after last frost. Harvest when kernels are milky. Used for food, feed, and industrial purposes.",
			"ta": "சோளம் ஒரு பல்நோக்கு தானிய பயிர். வெப்பமான காலநிலை மற்றும் நல்ல வடிகால் மண் தேவை।",
			"te": "మొక్కజొన్న బహుళ ఉపయోగ ధాన్య పంట. వెచ్చని వాతావరణం మరియు మంచి డ్రైనేజ్ అవసరం।",
			"ml": "ചോളം ഒരു ബഹുമുഖ ധാന്യ വിള. ചൂടുള്ള കാലാവസ്ഥയും നല്ല ഡ്രെയിനേജും ആവശ്യം।",
			"hi": "मक्का एक बहुउपयोगी अनाज की फसल है। गर्म जलवायु और अच्छी जल निकासी चाहिए।",
		},
		"barley": {
			"en": "Barley is a hardy cereal grain. Tolerates cool, dry conditions. Plant in fall or spring. Used for brewing, animal feed, and food.",
			"ta": "பார்லி ஒரு கடினமான தானிய பயிர். குளிர், வறண்ட நிலைமைகளை தாங்கும்।",
			"te": "బార్లీ దృఢమైన ధాన్య పంట. చల్లని, పొడి పరిస్థితులను తట్టుకోగలదు।",
			"ml": "ബാർലി കാഠിന്യമുള്ള ധാന്യ വിള. തണുത്ത, വരണ്ട അവസ്ഥകൾ സഹിക്കും।",
			"hi": "जौ एक कठोर अनाज है। ठंडी, सूखी परिस्थितियों को सहन करता है।",
		},
		"oats": {
			"en": "Oats are cool-season cereal grain. Prefer cooler climates. Plant in early spring or fall. Good for human consumption and animal feed.",
			"ta": "ஓட்ஸ் குளிர்கால தானிய பயிர். குளிர்ந்த காலநிலையை விரும்பும்।",
			"te": "వోట్స్ చల్లని కాలం ధాన్య పంట. చల్లని వాతావరణాన్ని ఇష్టపడుతుంది।",
			"ml": "ഓട്സ് തണുത്ത കാലാവസ്ഥയിലെ ധാന്യ വിള. തണുത്ത കാലാവസ്ഥ ഇഷ്ടപ്പെടുന്നു।",
			"hi": "जई ठंडे मौसम का अनाज है। ठंडी जलवायु पसंद करता है।",
		},
		"soybeans": {
			"en": "Soybeans are protein-rich legumes. Require warm growing season. Plant after soil warms. Fix nitrogen in soil. Harvest when pods rattle.",
			"ta": "சோயாபீன் புரதம் நிறைந்த பருப்பு வகை। வெப்பமான வளர்ச்சி காலம் தேவை।",
			"te": "సోయాబీన్స్ ప్రోటీన్ అధికంగా ఉండే గింజలు. వెచ్చని పెరుగుదల కాలం అవసరం।",
			"ml": "സോയാബീൻ പ്രോട്ടീൻ സമ്പുഷ്ടമായ പയർവർഗ്ഗം. ചൂടുള്ള വളർച്ചാ കാലാവസ്ഥ ആവശ്യം।",
			"hi": "सोयाबीन प्रोटीन युक्त दलहन है। गर्म बढ़ने का मौसम चाहिए।",
		},
		"chickpeas": {
			"en": "Chickpeas are drought-tolerant legumes. Prefer cool, dry conditions. Plant in winter/spring. Fix nitrogen. Good protein source.",
			"ta": "கொண்டைக்கடலை வறட்சியை தாங்கும் பருப்பு வகை। குளிர், வறண்ட நிலைமைகளை விரும்பும்।",
			"te": "శనగలు కరువు తట్టుకునే గింజలు. చల్లని, పొడి పరిస్థితులను ఇష్టపడతాయి।",
			"ml": "ചെറുപയർ വരൾച്ച സഹിക്കുന്ന പയർവർഗ്ഗം. തണുത്ത, വരണ്ട അവസ്ഥകൾ ഇഷ്ടപ്പെടുന്നു।",
			"hi": "चना सूखा सहने वाली दाल है। ठंडी, सूखी परिस्थितियां पसंद करता है।",
		},
		"lentils": {
			"en": "Lentils are cool-season legumes. Tolerate frost. Plant in fall or early spring. Quick-growing protein crop. Various colors available.",
			"ta": "பருப்பு குளிர்கால பருப்பு வகை। உறைபனியை தாங்கும். இலையுதிர் அல்லது வசந்த காலத்தில் நடவு।",
			"te": "మసూర్ చల్లని కాలం గింజలు. మంచును తట్టుకుంటాయి।",
			"ml": "പയർ തണുത്ത കാലാവസ്ഥയിലെ പയർവർഗ്ഗം. തുഷാരം സഹിക്കും।",
			"hi": "मसूर ठंडे मौसम की दाल है। पाला सहन करती है।",
		},
		"tomatoes": {
			"en": "Tomatoes are warm-season vegetables. Need support structures. Require consistent watering. Harvest when fully colored but firm.",
			"ta": "தக்காளி வெப்பகால காய்கறி। ஆதார கட்டமைப்பு தேவை। நிலையான நீர்ப்பாசனம் தேவை।",
			"te": "టమోటాలు వేసవి కాలపు కూరగాయలు. మద్దతు నిర్మాణాలు అవసరం।",
			"ml": "തക്കാളി വേനൽക്കാല പച്ചക്കറി. പിന്തുണ ഘടനകൾ ആവശ്യം।",
			"hi": "टमाटर गर्म मौसम की सब्जी है। सहारे की संरचना चाहिए।",
		},
		"potatoes": {
			"en": "Potatoes are cool-season tubers. Plant in early spring. Hill soil around plants. Harvest when tops die back. Store in cool, dark place.",
			"ta": "உருளைக்கிழங்கு குளிர்கால கிழங்கு வகை। வசந்த காலத்தின் ஆரம்பத்தில் நடவு செய்யவும்।",
			"te": "బంగాళాదుంపలు చల్లని కాలం గడ్డకంద. వసంత ఋతువు ప్రారంభంలో నాటాలి।",
			"ml": "ഉരുളക്കിഴങ്ങ് തണുത്ത കാലാവസ്ഥയിലെ കിഴങ്ങ്. വസന്തത്തിന്റെ തുടക്കത്തിൽ നടുക।",
			"hi": "आलू ठंडे मौसम का कंद है। वसंत की शुरुआत में लगाएं।",
		},
		"onions": {
			"en": "Onions are biennial bulbs grown as annuals. Prefer cool weather for growth, warm weather for bulbing. Long day vs short day varieties.",
			"ta": "வெங்காயம் இரு ஆண்டு பயிராக வளர்க்கப்படும் ஆண்டு பயிர். வளர்ச்சிக்கு குளிர் காலநிலையை விரும்பும்।",
			"te": "ఉల్లిపాయలు రెండేళ్ల బల్బులు వార్షిక పంటలుగా పెరుగుతాయి। పెరుగుదలకు చల్లని వాతావరణం కావాలి।",
			"ml": "ഉള്ളി വാർഷിക വിളയായി വളർത്തുന്ന ദ്വിവാർഷിക ബൾബുകൾ. വളർച്ചയ്ക്ക് തണുത്ത കാലാവസ്ഥ ഇഷ്ടപ്പെടുന്നു।",
			"hi": "प्याज द्विवार्षिक बल्ब हैं जो वार्षिक फसल के रूप में उगाए जाते हैं।",
		},
		"carrots": {
			"en": "Carrots are cool-season root vegetables. Need loose, deep soil. Direct seed in garden. Thin seedlings. Harvest when roots reach desired size.",
			"ta": "கேரட் குளிர்கால வேர் காய்கறி। தளர்வான, ஆழமான மண் தேவை। தோட்டத்தில் நேரடி விதை।",
			"te": "క్యారెట్లు చల్లని కాలపు వేరు కూరగాయలు. వదులుగా, లోతైన మట్టి అవసరం।",
			"ml": "കാരറ്റ് തണുത്ത കാലാവസ്ഥയിലെ വേര് പച്ചക്കറി. അയഞ്ഞതും ആഴമുള്ളതുമായ മണ്ണ് ആവശ്യം।",
			"hi": "गाजर ठंडे मौसम की जड़ सब्जी है। ढीली, गहरी मिट्टी चाहिए।",
		},
		"apples": {
			"en": "Apples are temperate fruit trees. Require chill hours in winter. Plant in spring. Need cross-pollination. Harvest in fall when ripe.",
			"ta": "ஆப்பிள் மிதமான பழ மரங்கள். குளிர்காலத்தில் குளிர் மணி நேரம் தேவை। வசந்த காலத்தில் நடவு।",
			"te": "ఆపిల్స్ సమశీతోష్ణ పండ్ల చెట్లు. శీతాకాలంలో చల్లని గంటలు అవసరం।",
			"ml": "ആപ്പിൾ മിതശീതോഷ്ണ ഫലവൃക്ഷങ്ങൾ. ശീതകാലത്ത് തണുത്ത മണിക്കൂറുകൾ ആവശ്യം।",
			"hi": "सेब समशीतोष्ण फलों के पेड़ हैं। सर्दी में ठंडे घंटे चाहिए।",
		},
		"oranges": {
			"en": "Oranges are citrus fruits. Need warm, frost-free climate. Regular watering required. Harvest when fully colored and sweet.",
			"ta": "ஆரஞ்சு சிட்ரஸ் பழங்கள். வெப்பமான, உறைபனி இல்லாத காலநிலை தேவை।",
			"te": "నారింజలు సిట్రస్ పండ్లు. వెచ్చని, మంచు లేని వాతావరణం అవసరం।",
			"ml": "ഓറഞ്ച് സിട്രസ് ഫലങ്ങൾ. ചൂടുള്ളതും തുഷാരരഹിതവുമായ കാലാവസ്ഥ ആവശ്യം।",
			"hi": "संतरे खट्टे फल हैं। गर्म, पाला रहित जलवायु चाहिए।",
		},
		"bananas": {
			"en": "Bananas are tropical fruits. Need hot, humid climate. Require rich, well-drained soil. Harvest bunches when plump but green.",
			"ta": "வாழைப்பழம் வெப்பமண்டல பழங்கள். வெப்பமான, ஈரப்பதமான காலநிலை தேவை।",
			"te": "అరటిపండ్లు ఉష్ణమండల పండ్లు. వేడిమిగిలిన, తేమతో కూడిన వాతావరణం అవసరం।",
			"ml": "വാഴപ്പഴം ഉഷ്ണമേഖലാ ഫലങ്ങൾ. ചൂടുള്ളതും ഈർപ്പമുള്ളതുമായ കാലാവസ്ഥ ആവശ്യം।",
			"hi": "केले उष्णकटिबंधीय फल हैं। गर्म, नम जलवायु चाहिए।",
		},
		"grapes": {
			"en": "Grapes are perennial vines. Need warm, dry growing season. Require trellising support. Harvest when sugar content is optimal.",
			"ta": "திராட்சை பல ஆண்டு கொடிகள். வெப்பமான, வறண்ட வளர்ச்சி காலம் தேவை।",
			"te": "ద్రాక్షలు బహుఏళ్ల తీగలు. వెచ్చని, పొడి పెరుగుదల కాలం అవసరం।",
			"ml": "മുന്തിരി ബഹുവാർഷിക വള്ളികൾ. ചൂടുള്ളതും വരണ്ടതുമായ വളർച്ചാ കാലം ആവശ്യം।",
			"hi": "अंगूर बारहमासी बेल हैं। गर्म, सूखा बढ़ने का मौसम चाहिए।",
		},
		"cotton": {
			"en": "Cotton is a warm-season fiber crop. Requires long, hot growing season. Deep, well-drained soil needed. Harvest when bolls open.",
			"ta": "பருத்தி வெப்பகால நார் பயிர். நீண்ட, வெப்பமான வளர்ச்சி காலம் தேவை।",
			"te": "పత్తి వేసవి కాలపు నారు పంట. సుదీర్ఘమైన, వేడిమిగిలిన పెరుగుదల కాలం అవసరం।",
			"ml": "പരുത്തി വേനൽക്കാല നാര് വിള. ദീർഘവും ചൂടുള്ളതുമായ വളർച്ചാ കാലം ആവശ്യം।",
			"hi": "कपास गर्म मौसम की रेशा फसल है। लंबा, गर्म बढ़ने का मौसम चाहिए।",
		},
		"sugarcane": {
			"en": "Sugarcane is a tropical cash crop. Requires hot, humid climate. 12-18 month crop cycle. Needs abundant water. Harvest when stalks are mature.",
			"ta": "கரும்பு வெப்பமண்டல பணப் பயிர். வெப்பமான, ஈரப்பதமான காலநிலை தேவை।",
			"te": "చెరకు ఉష్ణమండల వాణిజ్య పంట. వేడిమిగిలిన, తేమతో కూడిన వాతావరణం అవసరం।",
			"ml": "കരിമ്പ് ഉഷ്ണമേഖലാ വാണിജ്യ വിള. ചൂടുള്ളതും ഈർപ്പമുള്ളതുമായ കാലാവസ്ഥ ആവശ്യം।",
			"hi": "गन्ना उष्णकटिबंधीय नकदी फसल है। गर्म, नम जलवायु चाहिए।",
		},
		"coffee": {
			"en": "Coffee is a tropical perennial shrub. Needs high altitude, consistent rainfall. Shade-grown preferred. Harvest cherries when ripe.",
			"ta": "காபி வெப்பமண்டல பல ஆண்டு புதர். உயர் பகுதி, நிலையான மழை தேவை।",
			"te": "కాఫీ ఉష్ణమండల బహుఏళ్ల పొద. ఎత్తైన ప్రాంతం, స్థిరమైన వర్షపాతం అవసరం।",
			"ml": "കാപ്പി ഉഷ്ണമേഖലാ ബഹുവാർഷിക കുറ്റിച്ചെടി. ഉയർന്ന പ്രദേശം, സ്ഥിരമായ മഴ ആവശ്യം।",
			"hi": "कॉफी उष्णकटिबंधीय बारहमासी झाड़ी है। ऊंचाई, लगातार बारिश चाहिए।",
		},
		"tea": {
			"en": "Tea is a perennial evergreen shrub. Prefers cool, misty climate. Well-drained acidic soil needed. Harvest young leaves regularly.",
			"ta": "தேயிலை பல ஆண்டு பசுமையான புதர். குளிர், மூடுபனி காலநிலையை விரும்பும்।",
			"te": "తేనీరు బహుఏళ్ల సతత హరిత పొద. చల్లని, పొగమంచుతో కూడిన వాతావరణాన్ని ఇష్టపడుతుంది।",
			"ml": "ചായ ബഹുവാർഷിക നിത്യഹരിത കുറ്റിച്ചെടി. തണുത്തതും മൂടിക്കെട്ടിയതുമായ കാലാവസ്ഥ ഇഷ്ടപ്പെടുന്നു।",
			"hi": "चाय बारहमासी सदाबहार झाड़ी है। ठंडी, धुंधली जलवायु पसंद करती है।",
		},
	},
	"soil": {
		"clay": {
			"en": "Clay soil retains water well but drains slowly. Good for rice cultivation. Add organic matter to improve drainage. Test pH regularly. Suitable for crops that need consistent moisture.",
			"ta": "களிமண் மண் நீரை நன்றாக தக்கவைக்கிறது ஆனால் மெதுவாக வடிகிறது. நெல் சாகுபடிக்கு நல்லது. வடிகால் மேம்படுத்த கரிம பொருட்களை சேர்க்கவும்.",
			"te": "మట్టి మంచిగా నీరు నిలుపుకుంటుంది కానీ నెమ్మదిగా పారిపోతుంది. వరి సాగుకు మంచిది. నీటి వడపోతను మెరుగుపరచడానికి సేంద్రీయ పదార్థాలను కలపండి.",
			"ml": "കളിമണ്ണ് വെള്ളം നന്നായി നിലനിർത്തുന്നു പക്ഷേ പതുക്കെ ഒഴുകുന്നു. നെല്ലുകൃഷിക്ക് നല്ലത്. ഡ്രെയിനേജ് മെച്ചപ്പെടുത്താൻ ജൈവവസ്തുക്കൾ ചേർക്കുക.",
		},
		"sandy": {
			"en": "Sandy soil drains quickly but requires frequent irrigation. Good for root vegetables. Add compost to retain nutrients. Suitable for crops like carrots, potatoes, onions.",
			"ta": "மணல் மண் விரைவாக வடிகிறது ஆனால் அடிக்கடி நீர்ப்பாசனம் தேவை. வேர் காய்கறிகளுக்கு நல்லது. ஊட்டச்சத்துக்களை தக்கவைக்க கம்போஸ்ட் சேர்க்கவும்.",
			"te": "ఇసుక మట్టి త్వరగా పారిపోతుంది కానీ తరచుగా నీటిపారుదల అవసరం. వేర్ కూరగాయలకు మంచిది. పోషకాలను నిలుపుకోవడానికి కంపోస్ట్ చేర్చండి.",
			"ml": "മണൽമണ്ണ് വേഗത്തിൽ ഒഴുകുന്നു പക്ഷേ ഇടയ്ക്കിടെ നനയ്ക്കേണ്ടതുണ്ട്. റൂട്ട് പച്ചക്കറികൾക്ക് നല്ലത്. പോഷകങ്ങൾ നിലനിർത്താൻ കമ്പോസ്റ്റ് ചേർക്കുക.",
		},
		"loamy": {
			"en": "Loamy soil is ideal for most crops. Perfect balance of drainage and retention. Rich in nutrients. Suitable for vegetables, fruits, grains. Maintain with organic matter.",
			"ta": "களிமண் கலந்த மண் பெரும்பாலான பயிர்களுக்கு ஏற்றது. வடிகால் மற்றும் தக்கவைப்பின் சரியான சமநிலை. ஊட்டச்சத்து நிறைந்தது.",
			"te": "లేత మట్టి చాలా పంటలకు అనువైనది. డ్రైనేజ్ మరియు రిటెన్షన్ యొక్క పరిపూర్ణ సమతుల్యత. పోషకాలతో సమృద్ధిగా ఉంటుంది.",
			"ml": "പശിമമണ്ണ് മിക്ക വിളകൾക്കും അനുയോജ്യം. ഡ്രെയിനേജിന്റെയും നിലനിർത്തലിന്റെയും മികച്ച സന്തുലനം. പോഷകങ്ങളാൽ സമൃദ്ധം.",
		},
	},
	"irrigation": {
		"drip": {
			"en": "Drip irrigation saves 30-50% water. Delivers water directly to plant roots. Reduces weed growth. Initial investment high but long-term savings. Best for row crops and orchards.",
			"ta": "சொட்டு நீர்ப்பாசனம் 30-50% நீரை சேமிக்கிறது. தாவர வேர்களுக்கு நேரடியாக நீர் வழங்குகிறது. களை வளர்ச்சியை குறைக்கிறது.",
			"te": "డ్రిప్ నీటిపారుదల 30-50% నీటిని ఆదా చేస్తుంది. మొక్కల వేర్లకు నేరుగా నీటిని అందిస్తుంది. కలుపు మొక్కల పెరుగుదలను తగ్గిస్తుంది.",
			"ml": "ഡ്രിപ്പ് ജലസേചനം 30-50% വെള്ളം ലാഭിക്കുന്നു. ചെടികളുടെ വേരുകളിലേക്ക് നേരിട്ട് വെള്ളം എത്തിക്കുന്നു. കളകളുടെ വളർച്ച കുറയ്ക്കുന്നു.",
		},
		"sprinkler": {
			"en": "Sprinkler irrigation covers large areas efficiently. Good for uniform water distribution. Suitable for most field crops. Requires good water pressure. Can be automated easily.",
			"ta": "தெளிப்பு நீர்ப்பாசனம் பெரிய பகுதிகளை திறமையாக மூடுகிறது. சீரான நீர் விநியோகத்திற்கு நல்லது. பெரும்பாலான வயல் பயிர்களுக்கு ஏற்றது.",
			"te": "స్ప్రింక్లర్ నీటిపారుదల పెద్ద ప్రాంతాలను సమర్థవంతంగా కవర్ చేస్తుంది. ఏకరీతి నీటి పంపిణీకి మంచిది. చాలా వరల పంటలకు అనుకూలం.",
			"ml": "സ്പ്രിങ്ക്ളർ ജലസേചനം വലിയ പ്രദേശങ്ങളെ കാര്യക്ഷമമായി മൂടുന്നു. ഏകീകൃത ജല വിതരണത്തിന് നല്ലത്. മിക്ക വയൽ വിളകൾക്കും അനുയോജ്യം.",
		},
	},
	"diseases": {
		"blight": {
			"en": "Blight causes dark spots on leaves and stems. Caused by fungal infection. Remove affected parts immediately. Use copper-based fungicides. Ensure good air circulation.",
			"ta": "கருமை நோய் இலைகள் மற்றும் தண்டுகளில் கருமையான புள்ளிகளை ஏற்படுத்துகிறது. பூஞ்சை தொற்றால் ஏற்படுகிறது. பாதிக்கப்பட்ட பகுதிகளை உடனே அகற்றவும்.",
			"te": "బ్లైట్ ఆకులు మరియు కాండాలపై ముదురు మచ్చలను కలిగిస్తుంది. ఫంగల్ ఇన్ఫెక్షన్ వల్ల కలుగుతుంది. ప్రభావిత భాగాలను వెంటనే తొలగించండి.",
			"ml": "ബ്ലൈറ്റ് ഇലകളിലും തണ്ടുകളിലും ഇരുണ്ട പാടുകൾ ഉണ്ടാക്കുന്നു. ഫംഗൽ അണുബാധ മൂലമാണ് ഇത് സംഭവിക്കുന്നത്. ബാധിത ഭാഗങ്ങൾ ഉടനെ നീക്കം ചെയ്യുക.",
		},
	},
}
