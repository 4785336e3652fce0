package catalog

// Builtin returns a fresh copy of the built-in catalog.
func Builtin() *Catalog {
	return builtin.Clone()
}

var builtin = &Catalog{Categories: []Category{
	{
		ID:          "text-generation",
		Name:        "Text Generation",
		Description: "AI tools for generating and editing text content",
		Color:       "#3B82F6",
		Icon:        "✍️",
		Tools: []Tool{
			{ID: "chatgpt", Name: "ChatGPT", Description: "Conversational AI assistant by OpenAI", URL: "https://chat.openai.com", Popularity: 95},
			{ID: "claude", Name: "Claude", Description: "AI assistant by Anthropic", URL: "https://claude.ai", Popularity: 85},
			{ID: "gemini", Name: "Gemini", Description: "Google's advanced AI assistant", URL: "https://gemini.google.com", Popularity: 80},
			{ID: "jasper", Name: "Jasper", Description: "AI content creation platform", URL: "https://jasper.ai", Popularity: 70},
		},
	},
	{
		ID:          "image-generation",
		Name:        "Image Generation",
		Description: "AI tools for creating and editing images",
		Color:       "#EC4899",
		Icon:        "🎨",
		Tools: []Tool{
			{ID: "dalle", Name: "DALL·E", Description: "OpenAI's image generation model", URL: "https://openai.com/dall-e-3", Popularity: 90},
			{ID: "midjourney", Name: "Midjourney", Description: "AI art generation platform", URL: "https://midjourney.com", Popularity: 88},
			{ID: "stable-diffusion", Name: "Stable Diffusion", Description: "Open-source image generation", URL: "https://stability.ai", Popularity: 85},
			{ID: "firefly", Name: "Adobe Firefly", Description: "Creative generative AI", URL: "https://firefly.adobe.com", Popularity: 75},
		},
	},
	{
		ID:          "code-generation",
		Name:        "Code Generation",
		Description: "AI tools for programming and code assistance",
		Color:       "#10B981",
		Icon:        "💻",
		Tools: []Tool{
			{ID: "copilot", Name: "GitHub Copilot", Description: "AI pair programmer", URL: "https://copilot.github.com", Popularity: 92},
			{ID: "cursor", Name: "Cursor", Description: "AI code editor", URL: "https://cursor.sh", Popularity: 78},
			{ID: "replit", Name: "Replit Ghostwriter", Description: "AI coding assistant", URL: "https://replit.com", Popularity: 65},
			{ID: "tabnine", Name: "Tabnine", Description: "AI code completion", URL: "https://tabnine.com", Popularity: 60},
		},
	},
	{
		ID:          "audio-processing",
		Name:        "Audio Processing",
		Description: "AI tools for audio and music generation",
		Color:       "#F59E0B",
		Icon:        "🎵",
		Tools: []Tool{
			{ID: "elevenlabs", Name: "ElevenLabs", Description: "AI voice cloning and synthesis", URL: "https://elevenlabs.io", Popularity: 85},
			{ID: "mubert", Name: "Mubert", Description: "AI music generation", URL: "https://mubert.com", Popularity: 70},
			{ID: "speechify", Name: "Speechify", Description: "Text-to-speech AI", URL: "https://speechify.com", Popularity: 75},
			{ID: "descript", Name: "Descript", Description: "AI audio editing", URL: "https://descript.com", Popularity: 68},
		},
	},
	{
		ID:          "video-generation",
		Name:        "Video Generation",
		Description: "AI tools for video creation and editing",
		Color:       "#8B5CF6",
		Icon:        "🎬",
		Tools: []Tool{
			{ID: "runway", Name: "Runway ML", Description: "AI video generation platform", URL: "https://runwayml.com", Popularity: 80},
			{ID: "synthesia", Name: "Synthesia", Description: "AI video creation with avatars", URL: "https://synthesia.io", Popularity: 75},
			{ID: "luma", Name: "Luma AI", Description: "AI-powered video tools", URL: "https://lumalabs.ai", Popularity: 70},
			{ID: "pika", Name: "Pika Labs", Description: "AI video generation", URL: "https://pika.art", Popularity: 65},
		},
	},
	{
		ID:          "data-analysis",
		Name:        "Data Analysis",
		Description: "AI tools for data processing and analysis",
		Color:       "#06B6D4",
		Icon:        "📊",
		Tools: []Tool{
			{ID: "tableau-gpt", Name: "Tableau GPT", Description: "AI-powered data visualization", URL: "https://tableau.com", Popularity: 85},
			{ID: "julius", Name: "Julius AI", Description: "AI data analyst", URL: "https://julius.ai", Popularity: 70},
			{ID: "datarobot", Name: "DataRobot", Description: "Automated machine learning", URL: "https://datarobot.com", Popularity: 75},
			{ID: "h2o", Name: "H2O.ai", Description: "AI and ML platform", URL: "https://h2o.ai", Popularity: 65},
		},
	},
	{
		ID:          "design-tools",
		Name:        "Design Tools",
		Description: "AI-powered design and creative tools",
		Color:       "#EF4444",
		Icon:        "🎯",
		Tools: []Tool{
			{ID: "canva-ai", Name: "Canva AI", Description: "AI-powered design platform", URL: "https://canva.com", Popularity: 90},
			{ID: "figma-ai", Name: "Figma AI", Description: "AI design assistance", URL: "https://figma.com", Popularity: 85},
			{ID: "framer-ai", Name: "Framer AI", Description: "AI web design tool", URL: "https://framer.com", Popularity: 75},
			{ID: "uizard", Name: "Uizard", Description: "AI UI design tool", URL: "https://uizard.io", Popularity: 60},
		},
	},
	{
		ID:          "productivity",
		Name:        "Productivity",
		Description: "AI tools for enhancing productivity",
		Color:       "#84CC16",
		Icon:        "⚡",
		Tools: []Tool{
			{ID: "notion-ai", Name: "Notion AI", Description: "AI-powered workspace", URL: "https://notion.so", Popularity: 88},
			{ID: "grammarly", Name: "Grammarly", Description: "AI writing assistant", URL: "https://grammarly.com", Popularity: 85},
			{ID: "otter", Name: "Otter.ai", Description: "AI meeting transcription", URL: "https://otter.ai", Popularity: 78},
			{ID: "zapier-ai", Name: "Zapier AI", Description: "AI automation platform", URL: "https://zapier.com", Popularity: 70},
		},
	},
}}
