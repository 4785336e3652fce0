package catalog

// DemoVideo is a demo clip shown in a tool's detail view.
type DemoVideo struct {
	Tool     string `json:"tool"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

const sampleVideoBase = "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_"

var demoVideos = map[string]DemoVideo{
	"ChatGPT":          {URL: sampleVideoBase + "1mb.mp4", Duration: "1:30"},
	"DALL·E":           {URL: sampleVideoBase + "2mb.mp4", Duration: "2:15"},
	"GitHub Copilot":   {URL: sampleVideoBase + "5mb.mp4", Duration: "3:45"},
	"Midjourney":       {URL: sampleVideoBase + "1mb.mp4", Duration: "2:30"},
	"Claude":           {URL: sampleVideoBase + "2mb.mp4", Duration: "2:00"},
	"Stable Diffusion": {URL: sampleVideoBase + "5mb.mp4", Duration: "4:20"},
	"ElevenLabs":       {URL: sampleVideoBase + "1mb.mp4", Duration: "1:45"},
	"Runway ML":        {URL: sampleVideoBase + "2mb.mp4", Duration: "3:10"},
}

var defaultDemoVideo = DemoVideo{URL: sampleVideoBase + "1mb.mp4", Duration: "2:30"}

// Demo returns the demo video for a tool name. Unknown names get the default
// clip, so the result is always playable. The second return value reports
// whether a tool-specific clip exists.
func Demo(toolName string) (DemoVideo, bool) {
	v, ok := demoVideos[toolName]
	if !ok {
		v = defaultDemoVideo
	}
	v.Tool = toolName
	return v, ok
}
