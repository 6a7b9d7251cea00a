package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
)

func TestCatalogShape(t *testing.T) {
	layers := Layers()
	require.Len(t, layers, 6)
	assert.Equal(t, len(layers), LayerCount())

	for _, layer := range layers {
		assert.NotEmpty(t, layer.ID)
		assert.NotEmpty(t, layer.Name)
		require.Equal(t, len(layer.Categories), len(layer.CategoryOrder),
			"layer %s: CategoryOrder must cover every category", layer.ID)
		for _, category := range layer.CategoryOrder {
			questions, ok := layer.Categories[category]
			require.True(t, ok, "layer %s: ordered category %q missing", layer.ID, category)
			assert.NotEmpty(t, questions)
			for _, question := range questions {
				assert.Equal(t, category, question.Category)
				if layer.IsOpenEnded {
					assert.Equal(t, model.QuestionTypeOpenEnded, question.Type)
				} else {
					assert.Equal(t, model.QuestionTypeLikert, question.Type)
				}
			}
		}
	}
}

func TestQuestionIDsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, layer := range Layers() {
		for _, question := range layer.Questions() {
			if prev, dup := seen[question.ID]; dup {
				t.Fatalf("question id %q appears in both %s and %s", question.ID, prev, layer.ID)
			}
			seen[question.ID] = layer.ID
		}
	}
}

func TestOnlyFinalLayerIsOpenEnded(t *testing.T) {
	layers := Layers()
	for i, layer := range layers {
		assert.Equal(t, i == len(layers)-1, layer.IsOpenEnded, "layer %s", layer.ID)
	}
}

func TestLayerLookups(t *testing.T) {
	layer := LayerByID("layer3")
	require.NotNil(t, layer)
	assert.Equal(t, "Aptitudes & Skills", layer.Name)
	assert.Nil(t, LayerByID("layer99"))

	assert.Equal(t, layer, LayerByIndex(2))
	assert.Nil(t, LayerByIndex(-1))
	assert.Nil(t, LayerByIndex(LayerCount()))
}

func TestQuestionByID(t *testing.T) {
	question, layer := QuestionByID("l3-tech-2")
	require.NotNil(t, question)
	require.NotNil(t, layer)
	assert.Equal(t, "Technical Skills", question.Category)
	assert.Equal(t, "layer3", layer.ID)

	question, layer = QuestionByID("missing")
	assert.Nil(t, question)
	assert.Nil(t, layer)
}

func TestValidResponse(t *testing.T) {
	valid := model.Response{
		LayerID:    "layer1",
		CategoryID: "Linguistic",
		QuestionID: "l1-ling-1",
		Response:   model.NumericValue(4),
	}
	assert.True(t, ValidResponse(valid))

	wrongLayer := valid
	wrongLayer.LayerID = "layer2"
	assert.False(t, ValidResponse(wrongLayer))

	wrongCategory := valid
	wrongCategory.CategoryID = "Naturalistic"
	assert.False(t, ValidResponse(wrongCategory))

	unknown := valid
	unknown.QuestionID = "l1-ling-99"
	assert.False(t, ValidResponse(unknown))
}

func TestEveryScoredCategoryMapsToCareers(t *testing.T) {
	for _, layer := range Layers() {
		if layer.IsOpenEnded {
			continue
		}
		for _, category := range layer.CategoryOrder {
			careers := CareersForCategory(category)
			assert.NotEmpty(t, careers, "category %q has no career mapping", category)
		}
	}
}

func TestCareerDetailLookup(t *testing.T) {
	detail, ok := CareerDetail("Data Science")
	require.True(t, ok)
	assert.Equal(t, "Data Science", detail.Name)
	assert.NotEmpty(t, detail.Skills)

	_, ok = CareerDetail("Unmapped Career")
	assert.False(t, ok)
}

func TestMappedCareersWithDetailsExistInMapping(t *testing.T) {
	inMapping := make(map[string]bool)
	for _, careers := range CareerMapping {
		for _, career := range careers {
			inMapping[career] = true
		}
	}
	for name := range CareerDetails {
		assert.True(t, inMapping[name], "career detail %q not reachable from any category", name)
	}
}
