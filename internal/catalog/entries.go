package catalog

var mechanical = []Entry{
	{
		ID:         "engine",
		Name:       "Combustion Engine",
		Category:   Mechanical,
		Dimensions: Dimensions{Width: 45, Height: 30, Depth: 35, Unit: "cm"},
		Overview:   "This mechanical assembly demonstrates the key components of a combustion engine system.",
		Specs:      "Four-stroke inline-4, 1.6 L displacement, 10.5:1 compression ratio, 85 kW at 6000 rpm.",
		Details:    "The crankshaft converts the reciprocating motion of the pistons into rotation. Timing gears keep the camshaft at half crank speed so each valve opens once per cycle.",
		Label:      "Cast aluminium block",
		LabelKind:  "Material",
	},
	{
		ID:         "pump",
		Name:       "Centrifugal Pump",
		Category:   Mechanical,
		Dimensions: Dimensions{Width: 28, Height: 24, Depth: 20, Unit: "cm"},
		Overview:   "A centrifugal pump adds kinetic energy to a fluid with a rotating impeller and recovers it as pressure in the volute.",
		Specs:      "Closed six-vane impeller, 2900 rpm, 12 m head, 40 L/min nominal flow.",
		Details:    "Fluid enters at the eye of the impeller, is flung outward along the vanes and decelerates in the widening volute casing, converting velocity into pressure.",
		Label:      "Stainless steel 316",
		LabelKind:  "Material",
	},
	{
		ID:         "cylinder",
		Name:       "Hydraulic Cylinder",
		Category:   Mechanical,
		Dimensions: Dimensions{Width: 12, Height: 12, Depth: 60, Unit: "cm"},
		Overview:   "A double-acting hydraulic cylinder turns fluid pressure into linear force in both directions.",
		Specs:      "80 mm bore, 45 mm rod, 400 mm stroke, rated at 210 bar.",
		Details:    "Pressure on the cap side extends the rod; pressure on the rod side retracts it. The annular rod-side area makes retraction faster but weaker than extension.",
		Label:      "Chrome-plated steel rod",
		LabelKind:  "Material",
	},
	{
		ID:         "transmission",
		Name:       "Manual Transmission",
		Category:   Mechanical,
		Dimensions: Dimensions{Width: 50, Height: 35, Depth: 40, Unit: "cm"},
		Overview:   "A gearbox selects between fixed ratios so the engine stays in its efficient speed range.",
		Specs:      "Five forward ratios plus reverse, helical constant-mesh gears, synchromesh on all forward gears.",
		Details:    "All gear pairs are always in mesh; selector forks slide dog clutches to lock one driven gear to the output shaft while synchro rings match speeds first.",
		Label:      "Case-hardened alloy steel",
		LabelKind:  "Material",
	},
	{
		ID:         "valve",
		Name:       "Gate Valve",
		Category:   Mechanical,
		Dimensions: Dimensions{Width: 15, Height: 38, Depth: 15, Unit: "cm"},
		Overview:   "A gate valve isolates flow by lowering a wedge across the pipe bore.",
		Specs:      "DN50 flanged body, rising stem, PN16 pressure rating, full-bore opening.",
		Details:    "The handwheel drives a threaded stem that lifts the gate clear of the flow path. Gate valves are meant to be fully open or fully closed, not for throttling.",
		Label:      "Ductile iron body",
		LabelKind:  "Material",
	},
}

var biological = []Entry{
	{
		ID:         "brain",
		Name:       "Human Brain",
		Category:   Biological,
		Dimensions: Dimensions{Width: 14, Height: 9, Depth: 17, Unit: "cm"},
		Overview:   "The cerebral cortex is responsible for higher-order brain functions including cognition and sensory processing.",
		Specs:      "About 1.4 kg, roughly 86 billion neurons, cortex 2 to 4 mm thick.",
		Details:    "The two hemispheres are joined by the corpus callosum. Each is divided into frontal, parietal, temporal and occipital lobes with distinct functional specialisations.",
		Label:      "Cerebral cortex",
		LabelKind:  "Region",
	},
	{
		ID:         "cerebellum",
		Name:       "Cerebellum",
		Category:   Biological,
		Dimensions: Dimensions{Width: 10, Height: 5, Depth: 6, Unit: "cm"},
		Overview:   "The cerebellum coordinates voluntary movement, balance and motor learning.",
		Specs:      "About 10% of brain volume but more than half of all neurons; tightly folded folia.",
		Details:    "Purkinje cells form the sole output of the cerebellar cortex, inhibiting the deep nuclei. Errors between intended and actual movement drive plasticity at parallel fibre synapses.",
		Label:      "Hindbrain",
		LabelKind:  "Region",
	},
	{
		ID:         "neuron",
		Name:       "Pyramidal Neuron",
		Category:   Biological,
		Dimensions: Dimensions{Width: 20, Height: 1000, Depth: 20, Unit: "µm"},
		Overview:   "A pyramidal neuron receives input on its dendrites and fires action potentials down a single axon.",
		Specs:      "Triangular soma around 20 µm, apical dendrite spanning cortical layers, resting potential near -70 mV.",
		Details:    "Excitatory synapses on dendritic spines depolarise the membrane. When the axon initial segment crosses threshold, voltage-gated sodium channels open and a spike propagates.",
		Label:      "Cortical layer V",
		LabelKind:  "Region",
	},
}
