package catalog

// VisualStyles are the glyphs an item or sub-image can be drawn with
var VisualStyles = []string{
	"🧪", "⚗️", "🔮", "💎", "🌟", "⭐", "✨", "💫", "🌙", "☄️",
	"🔥", "❄️", "⚡", "🌊", "🌪️", "🌈", "🎨", "🖼️", "🎭", "🎪",
	"🦄", "🐉", "🦋", "🌸", "🌺", "🌻", "🌹", "🌷", "🌼", "🍄",
}

// ArtTags is the fixed tag vocabulary. Crafting in one of the first ten
// costs the premium style fee.
var ArtTags = []string{
	"anime", "realistic", "abstract", "cyberpunk", "steampunk", "fantasy",
	"sci-fi", "vintage", "modern", "minimalist", "baroque", "gothic",
	"impressionist", "surreal", "pop-art", "watercolor", "oil-painting",
	"digital-art", "pixel-art", "sketch", "photorealistic", "cartoon",
	"manga", "comic", "noir", "pastel", "neon", "monochrome", "vibrant",
	"dark", "light", "ethereal", "mystical", "ancient", "futuristic",
	"nature", "urban", "space", "underwater", "forest", "desert",
	"mountain", "ocean", "sky", "fire", "ice", "lightning", "earth",
}

// ItemNames is the pool generated items draw their names from
var ItemNames = []string{
	"Ethereal Dreamscape", "Neon Cyberpunk Vision", "Ancient Mystical Scroll",
	"Cosmic Stardust Elixir", "Enchanted Forest Brew", "Digital Pixel Potion",
	"Watercolor Serenity", "Gothic Shadow Essence", "Anime Sparkle Mix",
	"Steampunk Gear Tonic", "Abstract Chaos Blend", "Vintage Sepia Draught",
	"Surreal Reality Bender", "Pop Art Explosion", "Minimalist Zen Formula",
	"Baroque Elegance Tincture", "Impressionist Light Capture", "Noir Mystery Vial",
	"Pastel Dream Weaver", "Vibrant Energy Burst", "Monochrome Simplicity",
	"Futuristic Hologram", "Nature's Harmony", "Urban Street Art",
	"Space Nebula Essence", "Underwater Coral Potion", "Forest Whisper Brew",
	"Desert Mirage Elixir", "Mountain Peak Clarity", "Ocean Depth Mystery",
	"Sky Cloud Dancer", "Fire Phoenix Rebirth", "Ice Crystal Formation",
	"Lightning Storm Capture", "Earth Grounding Essence", "Mystical Aura Glow",
	"Ancient Rune Script", "Digital Matrix Code", "Ethereal Ghost Wisp",
	"Cosmic Black Hole", "Enchanted Fairy Dust", "Cybernetic Enhancement",
	"Vintage Film Grain", "Modern Geometric", "Abstract Emotion",
	"Fantasy Dragon Scale", "Sci-Fi Laser Beam", "Gothic Cathedral",
	"Anime Magical Girl", "Steampunk Clockwork", "Watercolor Bleeding",
	"Oil Paint Texture", "Sketch Charcoal", "Comic Book Hero",
}

// IsArtTag reports whether tag is part of the vocabulary
func IsArtTag(tag string) bool {
	return TagIndex(tag) >= 0
}

// TagIndex returns the position of tag in ArtTags, or -1
func TagIndex(tag string) int {
	for i, t := range ArtTags {
		if t == tag {
			return i
		}
	}
	return -1
}

// RandomStyle picks a glyph using the caller's draw in [0,1)
func RandomStyle(r float64) string {
	return VisualStyles[int(r*float64(len(VisualStyles)))]
}
