package catalog

// Feature is one row of the AR features panel.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Share is one slice of the learning method effectiveness chart.
type Share struct {
	Name  string
	Value float64
}

type Resource struct {
	Title string
	URL   string
}

var features = []Feature{
	{Icon: "↻", Title: "360° Rotation", Description: "Rotate models freely to view from any angle"},
	{Icon: "⊕", Title: "Zoom & Pan", Description: "Get closer to study specific details"},
	{Icon: "≡", Title: "Layer Toggle", Description: "Show or hide different component layers"},
	{Icon: "⌖", Title: "Interactive Points", Description: "Select highlighted areas for detailed information"},
}

func Features() []Feature { return features }

func Objectives(c Category) []string {
	if c == Biological {
		return []string{
			"Identify major brain structures and their functions",
			"Understand neuronal connections and pathways",
			"Visualize brain activity patterns during cognition",
			"Explore the relationship between brain regions",
			"Learn about neurosurgical approaches and considerations",
		}
	}
	return []string{
		"Understand the basic principles of combustion engines",
		"Visualize how mechanical components interact in 3D space",
		"Identify key engine parts and their functions",
		"Analyze mechanical stress points in dynamic systems",
		"Learn assembly and disassembly sequences",
	}
}

// Effectiveness returns learning method shares in percent; they sum to 100.
func Effectiveness(c Category) []Share {
	if c == Biological {
		return []Share{{"Visualization", 50}, {"Interaction", 35}, {"Traditional", 15}}
	}
	return []Share{{"Visualization", 45}, {"Interaction", 30}, {"Traditional", 25}}
}

// Engagement is average minutes per student per week over one term.
func Engagement(c Category) []float64 {
	if c == Biological {
		return []float64{22, 25, 31, 30, 36, 41, 39, 44, 47, 52, 50, 55}
	}
	return []float64{18, 21, 20, 26, 29, 33, 31, 35, 38, 37, 42, 45}
}

func Resources(c Category) []Resource {
	if c == Biological {
		return []Resource{
			{Title: "Neuroanatomy Guide", URL: "#"},
			{Title: "Brain Mapping Resources", URL: "#"},
		}
	}
	return []Resource{
		{Title: "Engine Design Manual", URL: "#"},
		{Title: "Video Tutorials", URL: "#"},
	}
}
