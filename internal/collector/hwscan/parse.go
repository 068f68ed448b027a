package hwscan

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// intelModelRegex matches the model number of Core-i CPUs, e.g. "i7-8565U" or "i5-13500H".
var intelModelRegex = regexp.MustCompile(`i[3579]-(\d{2,5})`)

// ryzenModelRegex matches the leading model digit after the Ryzen tier, e.g. "Ryzen 7 5800H".
var ryzenModelRegex = regexp.MustCompile(`Ryzen\s+\d\s+(\d)`)

// resolutionRegex matches a WxH display mode, e.g. "1920x1080" or "3840x2160".
var resolutionRegex = regexp.MustCompile(`(\d{3,5})x(\d{3,5})`)

var (
	decimalRegex = regexp.MustCompile(`[\d.]+`)
	integerRegex = regexp.MustCompile(`\d+`)
)

// parseCPUInfo extracts the first reported model name and the logical processor
// count from /proc/cpuinfo content.
func parseCPUInfo(cpuinfo string) (model string, cores int) {
	model = Unknown
	for _, line := range strings.Split(cpuinfo, "\n") {
		if strings.HasPrefix(line, "model name") && model == Unknown {
			if _, v, ok := strings.Cut(line, ":"); ok {
				model = strings.TrimSpace(v)
			}
		}
		if strings.HasPrefix(line, "processor") {
			cores++
		}
	}
	return model, cores
}

// parseCPUGeneration derives the CPU generation from vendor model naming.
// Intel: five model digits carry the generation in the first two (13500 -> 13),
// as do four digits starting with 1 (the G-suffix mobile series, 1185 -> 11);
// other four digit models carry it in the first digit (8565 -> 8). AMD: the
// digit after the Ryzen tier. 0 when undetermined. The heuristic is lossy for
// numbering schemes outside those conventions.
func parseCPUGeneration(model string) int {
	if m := intelModelRegex.FindStringSubmatch(model); m != nil {
		num := m[1]
		switch {
		case len(num) == 5 || (len(num) == 4 && num[0] == '1'):
			g, _ := strconv.Atoi(num[:2])
			return g
		case len(num) == 4:
			g, _ := strconv.Atoi(num[:1])
			return g
		}
	}
	if m := ryzenModelRegex.FindStringSubmatch(model); m != nil {
		g, _ := strconv.Atoi(m[1])
		return g
	}
	return 0
}

// parseMemTotalGB extracts MemTotal from /proc/meminfo content, in GB rounded
// to the nearest integer. The kernel reports kibibytes.
func parseMemTotalGB(meminfo string) int {
	for _, line := range strings.Split(meminfo, "\n") {
		if !strings.HasPrefix(line, "MemTotal") {
			continue
		}
		kb, err := strconv.Atoi(integerRegex.FindString(line))
		if err != nil {
			return 0
		}
		return int(math.Round(float64(kb) / 1_048_576))
	}
	return 0
}

// parseRAMType extracts the DDR type from a dmidecode memory-device table.
func parseRAMType(memTable string) string {
	for _, line := range strings.Split(memTable, "\n") {
		if strings.Contains(line, "Type:") && strings.Contains(line, "DDR") {
			if _, v, ok := strings.Cut(line, ":"); ok {
				return strings.TrimSpace(v)
			}
		}
	}
	return Unknown
}

// parseBatteryPct derives the battery health percentage from upower output as the
// ratio of present to design capacity. "N/A" when either value is missing.
func parseBatteryPct(upower string) string {
	var full, design float64
	for _, line := range strings.Split(upower, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "energy-full:") && !strings.Contains(line, "design") {
			if v, err := strconv.ParseFloat(decimalRegex.FindString(line), 64); err == nil {
				full = v
			}
		}
		if strings.Contains(line, "energy-full-design:") {
			if v, err := strconv.ParseFloat(decimalRegex.FindString(line), 64); err == nil {
				design = v
			}
		}
	}

	if full == 0 || design <= 0 {
		return Unknown
	}
	return strconv.Itoa(int(math.Round(full / design * 100)))
}

// parseGPU scans a PCI device listing for a discrete GPU and returns its
// description, or "None" when no NVIDIA or AMD Radeon device is listed.
func parseGPU(pciListing string) string {
	for _, line := range strings.Split(pciListing, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "nvidia") && !(strings.Contains(lower, "amd") && strings.Contains(lower, "radeon")) {
			continue
		}
		if _, desc, ok := strings.Cut(line, ": "); ok {
			return strings.TrimSpace(desc)
		}
		return "Discrete GPU"
	}
	return NoGPU
}

// maxResolution returns the mode with the largest area in a line oriented mode
// listing, or (0, 0) when none matches.
func maxResolution(listing string) (w, h int) {
	for _, line := range strings.Split(listing, "\n") {
		m := resolutionRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		mw, _ := strconv.Atoi(m[1])
		mh, _ := strconv.Atoi(m[2])
		if mw*mh > w*h {
			w, h = mw, mh
		}
	}
	return w, h
}
