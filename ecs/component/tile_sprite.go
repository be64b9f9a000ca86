package component

// TileSprite repeats the entity's sprite image Count times to the right.
type TileSprite struct {
	Count int
}

var TileSpriteComponent = NewComponent[TileSprite]()
