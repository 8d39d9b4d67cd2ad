package refdata

var seedNames = []NameEntry{
	{"João Silva", GenderMale}, {"Maria Oliveira", GenderFemale},
	{"Carlos Eduardo", GenderMale}, {"Ana Paula", GenderFemale},
	{"Pedro Henrique", GenderMale}, {"Fernanda Costa", GenderFemale},
	{"Luiz Fernando", GenderMale}, {"Mariana Alves", GenderFemale},
	{"Gabriel Lima", GenderMale}, {"Rafaela Pereira", GenderFemale},
	{"Lucas Souza", GenderMale}, {"Juliana Mendes", GenderFemale},
	{"Felipe Almeida", GenderMale}, {"Isabela Martins", GenderFemale},
	{"Roberto Vieira", GenderMale}, {"Renata Rocha", GenderFemale},
	{"Ricardo Fernandes", GenderMale}, {"Beatriz Freitas", GenderFemale},
	{"Vinícius Moreira", GenderMale}, {"Larissa Gonçalves", GenderFemale},
	{"Diego Azevedo", GenderMale}, {"Camila Ribeiro", GenderFemale},
	{"Tiago Costa", GenderMale}, {"Patrícia Ferreira", GenderFemale},
	{"Guilherme Pinto", GenderMale}, {"Viviane Duarte", GenderFemale},
	{"Renato Castro", GenderMale}, {"Elaine Moura", GenderFemale},
	{"César Oliveira", GenderMale}, {"Simone Cardoso", GenderFemale},
	{"Bruno Fonseca", GenderMale}, {"Natália Braga", GenderFemale},
	{"Hugo Santana", GenderMale}, {"Letícia Mendes", GenderFemale},
	{"Marcelo Antunes", GenderMale}, {"Tatiana Correia", GenderFemale},
	{"Vitor Barreto", GenderMale}, {"Adriana Campos", GenderFemale},
	{"Leonardo Mendes", GenderMale}, {"Carolina Machado", GenderFemale},
	{"Rodrigo Moreira", GenderMale}, {"Aline Vasconcelos", GenderFemale},
	{"Daniel Pereira", GenderMale}, {"Priscila Martins", GenderFemale},
	{"Igor Sampaio", GenderMale}, {"Vanessa Neves", GenderFemale},
	{"Fábio Rocha", GenderMale}, {"Jéssica Fernandes", GenderFemale},
	{"Alexandre Almeida", GenderMale}, {"Luciana Ferreira", GenderFemale},
}

// login suffixes; duplicates are intentional and weight the draw
var seedAdjectives = []string{
	"01", "delas", "slots", "acordeon", "junior", "safadinha",
	"cheirosa", "oficial", "cassino", "011", "021", "013",
	"damidia", "daspaty", "delas", "xpto", "topzera", "zica",
	"coringa", "malvada", "patroa", "feliz", "vip", "loira",
	"branquela", "mister", "sedutora", "gangster", "bbb",
	"noob", "expert", "black", "pink", "gold", "silver",
	"brabo", "insano", "like", "quente", "frio", "bombom",
	"king", "queen", "doida", "boss", "star", "021", "013",
	"000", "plus",
}

// Brazilian DDD codes
var seedAreaCodes = []string{
	"11", "12", "13", "14", "15", "16", "17", "18", "19",
	"21", "22", "24", "27", "28",
	"31", "32", "33", "34", "35", "37", "38",
	"41", "42", "43", "44", "45", "46", "47", "48", "49",
	"51", "53", "54", "55",
	"61", "62", "63", "64", "65", "66", "67", "68", "69",
	"71", "73", "74", "75", "77", "79",
	"81", "82", "83", "84", "85", "86", "87", "88", "89",
	"91", "92", "93", "94", "95", "96", "97", "98", "99",
}
