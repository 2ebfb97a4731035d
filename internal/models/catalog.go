package models

// firstPartyCatalog is the fixed reference list of aircraft that ship with
// the simulator. It changes only with a product release, i.e. with a new
// build. Note the three "Experimental" entries with different engine counts:
// engine count is part of identity, so each is distinct.
var firstPartyCatalog = []Aircraft{
	{Studio: LaminarStudio, Name: "Cessna 172SP", Categories: NewCategorySet(CategoryGeneralAviation), Engines: 1},
	{Studio: LaminarStudio, Name: "Baron B58", Categories: NewCategorySet(CategoryGeneralAviation), Engines: 2},
	{Studio: LaminarStudio, Name: "B747-400 United", Categories: NewCategorySet(CategoryAirliner), Engines: 4},
	{Studio: LaminarStudio, Name: "Cirrus TheJet", Categories: NewCategorySet(CategoryGeneralAviation), Engines: 1},
	{Studio: LaminarStudio, Name: "KingAir C90B", Categories: NewCategorySet(CategoryGeneralAviation), Engines: 2},
	{Studio: LaminarStudio, Name: "B777-200 British Airways", Categories: NewCategorySet(CategoryAirliner), Engines: 2},
	{Studio: LaminarStudio, Name: "Bell 206", Categories: NewCategorySet(CategoryHelicopter), Engines: 1},
	{Studio: LaminarStudio, Name: "FA-22 Raptor", Categories: NewCategorySet(CategoryMilitary), Engines: 2},
	{Studio: LaminarStudio, Name: "RV-10", Categories: NewCategorySet(CategoryExperimental), Engines: 1},
	{Studio: LaminarStudio, Name: "P180 Avanti Ferrari Team", Categories: NewCategorySet(CategoryGeneralAviation), Engines: 2},
	{Studio: LaminarStudio, Name: "X-15", Categories: NewCategorySet(CategoryExperimental), Engines: 1},
	{Studio: LaminarStudio, Name: "StinsonL5", Categories: NewCategorySet(CategoryGeneralAviation), Engines: 1},
	{Studio: LaminarStudio, Name: "Columbia-400", Categories: NewCategorySet(CategoryGeneralAviation), Engines: 1},
	{Studio: LaminarStudio, Name: "Robinson R22 Beta", Categories: NewCategorySet(CategoryHelicopter), Engines: 1},
	{Studio: LaminarStudio, Name: "KC-10", Categories: NewCategorySet(CategoryAirliner), Engines: 3},
	{Studio: LaminarStudio, Name: "B747-100 NASA", Categories: NewCategorySet(CategoryAirliner), Engines: 4},
	{Studio: LaminarStudio, Name: "F-4 Phantom", Categories: NewCategorySet(CategoryMilitary), Engines: 2},
	{Studio: LaminarStudio, Name: "ASK21", Categories: NewCategorySet(CategoryGlider), Engines: 0},
	{Studio: LaminarStudio, Name: "C-130", Categories: NewCategorySet(CategoryAirliner), Engines: 4},
	{Studio: LaminarStudio, Name: "Space Shuttle", Categories: NewCategorySet(CategoryExperimental), Engines: 3},
	{Studio: LaminarStudio, Name: "Marines Sea Harrier", Categories: NewCategorySet(CategoryVTOL), Engines: 1},
	{Studio: LaminarStudio, Name: "Viggen JA37", Categories: NewCategorySet(CategoryMilitary), Engines: 1},
	{Studio: LaminarStudio, Name: "Lancair Evolution", Categories: NewCategorySet(CategoryExperimental), Engines: 1},
	{Studio: LaminarStudio, Name: "SR-71 Blackbird-D21a", Categories: NewCategorySet(CategoryMilitary), Engines: 2},
	{Studio: LaminarStudio, Name: "Northrop B-2 Spirit", Categories: NewCategorySet(CategoryMilitary), Engines: 4},
	{Studio: LaminarStudio, Name: "Japanese Anime", Categories: NewCategorySet(CategoryScienceFiction), Engines: 2},
	{Studio: LaminarStudio, Name: "X-30 NASP", Categories: NewCategorySet(CategoryExperimental), Engines: 6},
	{Studio: LaminarStudio, Name: "B-52G NASA", Categories: NewCategorySet(CategoryMilitary), Engines: 8},
	{Studio: LaminarStudio, Name: "Rockwell B-1B Lancer", Categories: NewCategorySet(CategoryMilitary), Engines: 4},
	{Studio: LaminarStudio, Name: "GP_PT_60", Categories: NewCategorySet(CategoryExperimental), Engines: 1},
	{Studio: LaminarStudio, Name: "X-1 Cavallo", Categories: NewCategorySet(CategoryExperimental), Engines: 1},
	{Studio: LaminarStudio, Name: "Experimental", Categories: NewCategorySet(CategoryExperimental), Engines: 8},
	{Studio: LaminarStudio, Name: "Experimental", Categories: NewCategorySet(CategoryExperimental), Engines: 1},
	{Studio: LaminarStudio, Name: "Experimental", Categories: NewCategorySet(CategoryExperimental), Engines: 2},
}
