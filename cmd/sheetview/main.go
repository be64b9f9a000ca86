package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/barrelclimb/assets"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/ecs/system"
	"github.com/milk9111/barrelclimb/prefabs"
)

const (
	viewSize  = 256
	viewScale = 4
)

// sheetView plays one animation of a prefab's sprite sheet through the same
// animation system the game uses.
type sheetView struct {
	world  *ecs.World
	anims  *system.AnimationSystem
	sprite *component.Sprite
	anim   *component.Animation
	names  []string
	index  int
}

func (v *sheetView) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if len(v.names) > 1 && ebiten.IsKeyPressed(ebiten.KeySpace) && !v.anim.Playing {
		v.index = (v.index + 1) % len(v.names)
		v.anim.Play(v.names[v.index])
	}
	if !v.anim.Playing && len(v.names) > 0 {
		v.anim.Play(v.names[v.index])
	}
	v.anims.Update(v.world)
	return nil
}

func (v *sheetView) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x33, 0xA5, 0xE7, 0xff})
	if v.sprite.Image != nil {
		fw, fh := v.sprite.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(viewScale, viewScale)
		op.GeoM.Translate((viewSize-fw*viewScale)/2, (viewSize-fh*viewScale)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(v.sprite.Image, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s frame %d", v.anim.Current, v.sprite.Frame))
}

func (v *sheetView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func loadPrefab(name string) (prefabs.SheetSpec, map[string]prefabs.AnimationSpec, error) {
	switch name {
	case "player":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return prefabs.SheetSpec{}, nil, err
		}
		return spec.Sheet, spec.Animations, nil
	case "fire":
		spec, err := prefabs.LoadFireSpec()
		if err != nil {
			return prefabs.SheetSpec{}, nil, err
		}
		return spec.Sheet, spec.Animations, nil
	}
	return prefabs.SheetSpec{}, nil, fmt.Errorf("unknown prefab %q (want player or fire)", name)
}

func newSheetView(prefab, only string) (*sheetView, error) {
	sheetSpec, animSpecs, err := loadPrefab(prefab)
	if err != nil {
		return nil, err
	}
	sheet, err := assets.LoadImage(sheetSpec.Image)
	if err != nil {
		return nil, err
	}
	frames := assets.Frames(sheet, sheetSpec.FrameW, sheetSpec.FrameH, sheetSpec.Margin, sheetSpec.Spacing)
	if len(frames) == 0 {
		return nil, fmt.Errorf("%s has no %dx%d frames", sheetSpec.Image, sheetSpec.FrameW, sheetSpec.FrameH)
	}

	defs := make(map[string]component.AnimationDef, len(animSpecs))
	var names []string
	for name, s := range animSpecs {
		if only != "" && name != only {
			continue
		}
		defs[name] = component.AnimationDef{Name: name, Frames: s.Frames, FPS: s.FPS, Yoyo: s.Yoyo, Repeat: s.Repeat}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("prefab %s has no animation %q", prefab, only)
	}
	sort.Strings(names)

	v := &sheetView{
		world:  ecs.NewWorld(),
		anims:  system.NewAnimationSystem(),
		sprite: &component.Sprite{Frames: frames},
		anim:   &component.Animation{Defs: defs},
		names:  names,
	}
	v.sprite.SetFrame(0)
	e := v.world.CreateEntity()
	if err := ecs.Add(v.world, e, component.SpriteComponent, v.sprite); err != nil {
		return nil, err
	}
	if err := ecs.Add(v.world, e, component.AnimationComponent, v.anim); err != nil {
		return nil, err
	}
	return v, nil
}

func main() {
	prefab := flag.String("prefab", "player", "prefab whose sprite sheet to preview (player or fire)")
	anim := flag.String("anim", "", "play only this animation")
	flag.Parse()

	v, err := newSheetView(*prefab, *anim)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("Sheet preview: " + *prefab)
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
