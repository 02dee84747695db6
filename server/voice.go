package server

// Per-language speech assets for the voice webhooks. Keys are BCP-47
// tags as reported by Twilio speech detection; anything unknown falls
// back to English.

// twilioVoices picks the Say voice for a language.
var twilioVoices = map[string]string{
	"en-US": "alice", "en-GB": "alice", "en-AU": "alice", "en-CA": "alice",
	"es-ES": "Conchita", "es-MX": "Conchita", "es-US": "Conchita",
	"fr-FR": "Mathieu", "fr-CA": "Mathieu",
	"de-DE": "Hans",
	"it-IT": "Carla",
	"pt-BR": "Vitoria", "pt-PT": "Cristiano",
	"ja-JP": "Takumi",
	"ko-KR": "Seoyeon",
	"zh-CN": "Zhiyu", "zh-TW": "Zhiyu",
	"ar-SA": "Zeina", "ar-EG": "Zeina",
	"fa-IR": "Zira",
	"hi-IN": "Aditi",
	"ru-RU": "Tatyana",
	"nl-NL": "Lotte",
	"pl-PL": "Ewa",
	"tr-TR": "Filiz",
	"sv-SE": "Astrid",
	"da-DK": "Naja",
	"no-NO": "Liv",
	"fi-FI": "Suvi",
	"cs-CZ": "Josef",
	"hu-HU": "Gyorgy",
	"ro-RO": "Carmen",
	"th-TH": "Kanya",
	"vi-VN": "Linh",
}

func voiceForLanguage(lang string) string {
	if v, ok := twilioVoices[lang]; ok {
		return v
	}
	return "alice"
}

var greetings = map[string]string{
	"en-US": "Greetings from the Grand Vista. This is Nasrin, your dedicated room service concierge. How may I help you with our menu today?",
	"es-ES": "Saludos desde Grand Vista. Soy Nasrin, su conserje dedicada de servicio a la habitación. ¿Cómo puedo ayudarle con nuestro menú hoy?",
	"fr-FR": "Salutations du Grand Vista. Je suis Nasrin, votre concierge dédiée au service en chambre. Comment puis-je vous aider avec notre menu aujourd'hui?",
	"de-DE": "Grüße vom Grand Vista. Ich bin Nasrin, Ihre persönliche Concierge für den Zimmerservice. Wie kann ich Ihnen heute mit unserer Speisekarte helfen?",
	"it-IT": "Saluti dal Grand Vista. Sono Nasrin, la vostra concierge dedicata al servizio in camera. Come posso aiutarvi con il nostro menù oggi?",
	"ja-JP": "グランドビスタよりご挨拶申し上げます。ルームサービスの専属コンシェルジュ、ナスリンでございます。本日はメニューについてどのようにお手伝いできるでしょうか？",
	"zh-CN": "来自豪景酒店的问候。我是纳斯林，您专属的客房服务礼宾。今天我能为您介绍菜单吗？",
	"ar-SA": "تحيات من جراند فيستا. أنا نسرين، كونسيرج خدمة الغرف المخصصة لك. كيف يمكنني مساعدتك مع قائمتنا اليوم؟",
	"fa-IR": "درود از گرند ویستا. من نسرین هستم، کونسیرژ اختصاصی سرویس اتاق شما. امروز چگونه می‌توانم با منوی ما به شما کمک کنم؟",
	"hi-IN": "ग्रैंड विस्टा से अभिवादन। मैं नसरीन हूं, आपकी समर्पित रूम सर्विस कॉन्सिएर्ज। आज मैं मेन्यू में आपकी कैसे मदद कर सकती हूं?",
	"ru-RU": "Приветствие от Гранд Висты. Я Насрин, ваш персональный консьерж службы номеров. Чем я могу помочь вам с нашим меню сегодня?",
	"pt-BR": "Saudações do Grand Vista. Sou Nasrin, sua concierge dedicada de serviço de quarto. Como posso ajudá-lo com nosso menu hoje?",
}

var noInputPrompts = map[string]string{
	"en-US": "I didn't catch that. Could you please repeat?",
	"es-ES": "No entendí eso. ¿Podría repetir, por favor?",
	"fr-FR": "Je n'ai pas compris. Pourriez-vous répéter, s'il vous plaît?",
	"de-DE": "Das habe ich nicht verstanden. Könnten Sie das bitte wiederholen?",
	"it-IT": "Non ho capito. Potresti ripetere, per favore?",
	"ja-JP": "聞き取れませんでした。もう一度言っていただけますか？",
	"zh-CN": "我没听清楚。请您再说一遍好吗？",
	"ar-SA": "لم أفهم ذلك. هل يمكنك التكرار من فضلك؟",
	"fa-IR": "متوجه نشدم. لطفاً دوباره بگویید؟",
	"hi-IN": "मैं समझ नहीं पाया। क्या आप कृपया दोहरा सकते हैं?",
	"ru-RU": "Я не понял. Не могли бы вы повторить?",
	"pt-BR": "Não entendi. Você poderia repetir, por favor?",
}

var anythingElsePrompts = map[string]string{
	"en-US": "Is there anything else I can help you with?",
	"es-ES": "¿Hay algo más en lo que pueda ayudarle?",
	"fr-FR": "Y a-t-il autre chose avec laquelle je peux vous aider?",
	"de-DE": "Gibt es noch etwas, womit ich Ihnen helfen kann?",
	"it-IT": "C'è qualcos'altro con cui posso aiutarti?",
	"ja-JP": "他に何かお手伝いできることはありますか？",
	"zh-CN": "还有什么我可以帮助您的吗？",
	"ar-SA": "هل هناك أي شيء آخر يمكنني مساعدتك فيه؟",
	"fa-IR": "چیز دیگری هست که بتوانم کمکتان کنم؟",
	"hi-IN": "क्या मैं आपकी और किसी चीज़ में मदद कर सकता हूं?",
	"ru-RU": "Могу ли я еще чем-то помочь?",
	"pt-BR": "Há mais alguma coisa com que eu possa ajudá-lo?",
}

func promptFor(table map[string]string, lang string) string {
	if p, ok := table[lang]; ok {
		return p
	}
	return table["en-US"]
}

// speechHints biases Twilio's recognizer toward menu vocabulary across
// the supported languages.
const speechHints = "menu, order, price, burger, salad, pasta, dessert, chicken, salmon, beef, room, checkout, " +
	"menú, orden, precio, menù, ordine, prezzo, メニュー, 注文, 価格, 菜单, 订单, 价格, قائمة, طلب, سعر, منو, سفارش, قیمت"
