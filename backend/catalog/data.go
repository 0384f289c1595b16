package catalog

import "studytrack/backend/models"

// Built-in content table. In production this would come from the content
// platform; the tracker ships with the demo catalogs the pilot ran on.
var seedCatalogs = []struct {
	institution string
	term        int
	items       []models.StudyItem
}{
	{
		institution: "Claretiano",
		term:        3,
		items: []models.StudyItem{
			{ID: "1", Name: "Anatomia do Sistema Cardiovascular", Discipline: "Anatomia", Week: 1, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/anatomia-cardiovascular"},
			{ID: "2", Name: "Fisiologia Cardíaca - Ciclo Cardíaco", Discipline: "Fisiologia", Week: 1, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/fisiologia-cardiaca"},
			{ID: "3", Name: "Exercícios de Anatomia Cardiovascular", Discipline: "Anatomia", Week: 1, Kind: models.KindExercise, ResourceURL: "https://sanarflix.com.br/exercicios-anatomia"},
			{ID: "4", Name: "Farmacologia Cardiovascular", Discipline: "Farmacologia", Week: 2, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/farmaco-cardiovascular"},
			{ID: "5", Name: "Patologia Cardíaca", Discipline: "Patologia", Week: 2, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/patologia-cardiaca"},
			{ID: "6", Name: "Sistema Respiratório - Anatomia", Discipline: "Anatomia", Week: 3, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/anatomia-respiratorio"},
			{ID: "7", Name: "Fisiologia Respiratória", Discipline: "Fisiologia", Week: 3, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/fisiologia-respiratoria"},
			{ID: "8", Name: "Questões de Fisiologia", Discipline: "Fisiologia", Week: 3, Kind: models.KindExercise, ResourceURL: "https://sanarflix.com.br/questoes-fisiologia"},
		},
	},
	{
		institution: "USP",
		term:        2,
		items: []models.StudyItem{
			{ID: "9", Name: "Introdução à Histologia", Discipline: "Histologia", Week: 1, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/intro-histologia"},
			{ID: "10", Name: "Tecidos Básicos", Discipline: "Histologia", Week: 1, Kind: models.KindVideo, ResourceURL: "https://sanarflix.com.br/tecidos-basicos"},
		},
	},
}
