package responses

import (
	"pixelpaw/backend/internal/models"
)

// replyTable maps (archetype, mood) to candidate reply lines. The table
// is never mutated after init; Responder picks uniformly among the
// candidates for a bucket.
var replyTable = map[models.Archetype]map[models.Mood][]string{
	models.ArchetypeDog: {
		models.MoodHappy: {
			"*wags tail excitedly* I'm so happy to hear that! Your joy makes my day! 🐕",
			"*bounces around* That's wonderful! I love seeing you happy! 🐾",
			"*gives a happy bark* You're doing great! Let's celebrate together! 🎉",
		},
		models.MoodSad: {
			"*nuzzles your hand gently* I'm here for you. Want to tell me more about what's on your mind? 🐕",
			"*sits close beside you* It's okay to feel sad sometimes. I'm right here with you. 💙",
			"*puts paw on your lap* You're not alone. I'm here to listen and support you. 🐾",
		},
		models.MoodNeutral: {
			"*tilts head curiously* I'm listening! Tell me more! 🐕",
			"*wags tail* I'm here and happy to chat with you! 🐾",
			"*sits attentively* You have my full attention! What else is on your mind? 👂",
		},
		models.MoodExcited: {
			"*jumps with excitement* YES! Your energy is contagious! This is amazing! 🎊",
			"*spins in circles* WOW! I'm so excited with you! Let's celebrate! 🎉",
			"*barks happily* This is incredible! I'm so happy for you! 🌟",
		},
	},
	models.ArchetypeCat: {
		models.MoodHappy: {
			"*purrs contentedly* Your happiness brings me peace. Keep shining! 😺",
			"*stretches happily* Meow~ I'm glad you're doing well! 🌸",
			"*does a happy cat dance* That's purrfect news! 😸",
		},
		models.MoodSad: {
			"*purrs soothingly* Come here, let me comfort you. You're safe with me. 🐱",
			"*rubs against you gently* It's okay to feel this way. I'm here to help you heal. 💜",
			"*curls up beside you* Sometimes we all need a quiet moment. I'm here. 🌙",
		},
		models.MoodNeutral: {
			"*meows softly* Tell me more, I'm all ears~ 🐱",
			"*blinks slowly* I'm here and listening. Go on... 😺",
			"*settles comfortably* I have time for you. What's on your mind? 💭",
		},
		models.MoodExcited: {
			"*leaps gracefully* Meow! Your excitement is delightful! 🌟",
			"*playful pounce* This is wonderful! I'm thrilled for you! 😻",
			"*purrs loudly* Such positive energy! I love it! ✨",
		},
	},
	models.ArchetypeRabbit: {
		models.MoodHappy: {
			"*hops joyfully* Yay! Your happiness makes my ears wiggle with joy! 🐰",
			"*does a happy binky* That's amazing! Keep hopping forward! 🌟",
			"*twitches nose happily* You're doing wonderfully! I'm proud of you! 💚",
		},
		models.MoodSad: {
			"*nuzzles gently* I'm here to listen. Let's take things one hop at a time. 🐰",
			"*sits quietly beside you* Your feelings are valid. I'm here for you. 💙",
			"*offers a gentle paw* Even on tough days, you're not alone. I'm here. 🌿",
		},
		models.MoodNeutral: {
			"*perks up ears* I'm listening! What would you like to share? 🐰",
			"*twitches nose curiously* Tell me more! I'm here to help! 🌱",
			"*hops closer* I'm all ears for you! 👂",
		},
		models.MoodExcited: {
			"*does excited binkies* WOW! Your excitement is contagious! Let's hop to it! 🎉",
			"*bounces around* This is fantastic! I'm so happy with you! 🌈",
			"*celebrates with you* Amazing! Your joy makes my heart hop! 💚",
		},
	},
	models.ArchetypePanda: {
		models.MoodHappy: {
			"*munches bamboo happily* That's wonderful! Your happiness is as sweet as bamboo! 🐼",
			"*does a panda roll* I'm so glad you're feeling good! Let's enjoy this moment! 🎋",
			"*waves paws excitedly* You're amazing! Keep spreading that joy! ✨",
		},
		models.MoodSad: {
			"*offers a gentle hug* I'm here for you. Let's work through this together. 🐼",
			"*sits peacefully beside you* Take your time. I'm here to support you. 💚",
			"*shares bamboo* Sometimes a quiet moment helps. I'm right here with you. 🎋",
		},
		models.MoodNeutral: {
			"*munches bamboo thoughtfully* I'm listening. What's going on? 🐼",
			"*tilts head* Tell me more! I'm here to help! 🎋",
			"*sits attentively* I'm all ears! Share what's on your mind. 👂",
		},
		models.MoodExcited: {
			"*does a happy panda dance* WOW! This is incredible! I'm so excited with you! 🎊",
			"*rolls around joyfully* Amazing! Your energy is wonderful! 🌟",
			"*celebrates* YES! Let's enjoy this fantastic moment together! 🎉",
		},
	},
}
