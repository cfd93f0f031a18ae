package content

import "github.com/google/uuid"

// SectionKind tags the grouped chunks the planner emits.
type SectionKind string

const (
	SectionImages  SectionKind = "images"
	SectionTexts   SectionKind = "texts"
	SectionVideo   SectionKind = "video"
	SectionAudio   SectionKind = "audio"
	SectionYouTube SectionKind = "youtube"
)

// Section group sizes. Images sections hold 1..6 items, texts 1..2; video,
// audio and youtube sections always hold exactly one.
const (
	maxImagesPerSection = 6
	maxTextsPerSection  = 2
)

// Section is one renderable chunk of the memory page.
type Section struct {
	Kind  SectionKind `json:"kind"`
	Items []MediaItem `json:"items"`
}

// PlanLayout turns the order's media into the ordered section sequence the
// page renders. The designated cover photo is excluded; everything else is
// partitioned by type and interleaved in repeating rounds of
// images -> texts -> video -> audio -> youtube. Each round takes up to 6
// images, up to 2 texts, and one of each of the rest, until every category
// is exhausted. The function is pure and deterministic: the same items in
// the same insertion order always produce the same sections.
func PlanLayout(items []MediaItem, coverID uuid.UUID) []Section {
	var images, texts, videos, audios, links []MediaItem
	for _, item := range items {
		if item.ID == coverID {
			continue
		}
		switch item.Type() {
		case TypeImage:
			images = append(images, item)
		case TypeText:
			texts = append(texts, item)
		case TypeVideo:
			videos = append(videos, item)
		case TypeAudio:
			audios = append(audios, item)
		case TypeYouTube:
			links = append(links, item)
		}
	}

	var sections []Section
	var ii, ti, vi, ai, yi int
	for ii < len(images) || ti < len(texts) || vi < len(videos) || ai < len(audios) || yi < len(links) {
		if ii < len(images) {
			end := min(ii+maxImagesPerSection, len(images))
			sections = append(sections, Section{Kind: SectionImages, Items: images[ii:end:end]})
			ii = end
		}
		if ti < len(texts) {
			end := min(ti+maxTextsPerSection, len(texts))
			sections = append(sections, Section{Kind: SectionTexts, Items: texts[ti:end:end]})
			ti = end
		}
		if vi < len(videos) {
			sections = append(sections, Section{Kind: SectionVideo, Items: videos[vi : vi+1 : vi+1]})
			vi++
		}
		if ai < len(audios) {
			sections = append(sections, Section{Kind: SectionAudio, Items: audios[ai : ai+1 : ai+1]})
			ai++
		}
		if yi < len(links) {
			sections = append(sections, Section{Kind: SectionYouTube, Items: links[yi : yi+1 : yi+1]})
			yi++
		}
	}
	return sections
}
