package raylib

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/wander/entity"
)

// timelineKey is one keyframe of a transform timeline file.
type timelineKey struct {
	Time        float32    `json:"time"`
	Position    [3]float32 `json:"position"`
	Scale       [3]float32 `json:"scale"`
	RotationDeg [3]float32 `json:"rotation_deg"`
}

type timelineFile struct {
	Duration float32       `json:"duration"`
	Keys     []timelineKey `json:"keys"`
}

// sampledKey is a keyframe with its rotation converted to a quaternion.
type sampledKey struct {
	time     float32
	position mgl32.Vec3
	scale    mgl32.Vec3
	rotation mgl32.Quat
}

// timelineDriver plays a transform keyframe timeline: linear interpolation
// for position and scale, spherical for rotation. Position sticks at the
// end once playback finishes.
type timelineDriver struct {
	keys     []sampledKey
	duration float32

	playing  bool
	started  bool
	position float32
}

// DriverFactory builds an animation driver for a timeline reference from
// scene data. Fails soft: an unreadable timeline logs and yields no driver.
func DriverFactory(timeline string) entity.Driver {
	d, err := loadTimelineDriver(timeline)
	if err != nil {
		log.Printf("timeline load failed: %v", err)
		return nil
	}
	return d
}

func loadTimelineDriver(path string) (*timelineDriver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline %s: %w", path, err)
	}

	var file timelineFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse timeline %s: %w", path, err)
	}
	if len(file.Keys) == 0 {
		return nil, fmt.Errorf("timeline %s has no keyframes", path)
	}

	keys := make([]sampledKey, len(file.Keys))
	for i, k := range file.Keys {
		keys[i] = sampledKey{
			time:     k.Time,
			position: mgl32.Vec3{k.Position[0], k.Position[1], k.Position[2]},
			scale:    mgl32.Vec3{k.Scale[0], k.Scale[1], k.Scale[2]},
			rotation: mgl32.AnglesToQuat(
				mgl32.DegToRad(k.RotationDeg[0]),
				mgl32.DegToRad(k.RotationDeg[1]),
				mgl32.DegToRad(k.RotationDeg[2]),
				mgl32.XYZ,
			),
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].time < keys[j].time })

	duration := file.Duration
	if last := keys[len(keys)-1].time; duration < last {
		duration = last
	}

	return &timelineDriver{keys: keys, duration: duration}, nil
}

func (d *timelineDriver) Advance(dt float32) {
	if !d.playing {
		return
	}
	d.position += dt
	if d.position >= d.duration {
		d.position = d.duration
		d.playing = false
	}
}

func (d *timelineDriver) Play() {
	d.playing = true
	d.started = true
}

func (d *timelineDriver) Stop() {
	d.playing = false
}

func (d *timelineDriver) Playing() bool { return d.playing }

func (d *timelineDriver) Position() float32 { return d.position }

func (d *timelineDriver) Sample() (entity.Pose, bool) {
	if !d.started {
		return entity.Pose{}, false
	}

	first := d.keys[0]
	if d.position <= first.time || len(d.keys) == 1 {
		return poseOf(first), true
	}

	last := d.keys[len(d.keys)-1]
	if d.position >= last.time {
		return poseOf(last), true
	}

	hi := sort.Search(len(d.keys), func(i int) bool {
		return d.keys[i].time > d.position
	})
	a, b := d.keys[hi-1], d.keys[hi]
	t := (d.position - a.time) / (b.time - a.time)

	return entity.Pose{
		Position: lerpVec3(a.position, b.position, t),
		Scale:    lerpVec3(a.scale, b.scale, t),
		Rotation: mgl32.QuatSlerp(a.rotation, b.rotation, t),
	}, true
}

func (d *timelineDriver) Kind() entity.DriverKind { return entity.DriverTransform }

func poseOf(k sampledKey) entity.Pose {
	return entity.Pose{Position: k.position, Scale: k.scale, Rotation: k.rotation}
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
