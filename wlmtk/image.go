package wlmtk

import (
	"github.com/mstarongithub/wlmaker/gfxbuf"
	"github.com/sirupsen/logrus"
)

// Image is a Buffer showing an image file, scaled to a fixed size
type Image struct {
	Buffer
	orig ElementVmt
	path string
	// The loaded image, kept while the element lives
	source *gfxbuf.Buffer
}

func NewImage(path string, width, height int) (*Image, error) {
	source, err := gfxbuf.LoadImage(path, width, height)
	if err != nil {
		return nil, err
	}
	img := &Image{path: path, source: source}
	img.Buffer.init("image")
	img.orig = img.Element.Extend(ElementVmt{
		Destroy: img.destroy,
	})
	img.SetBuffer(source)
	return img, nil
}

func (img *Image) Path() string {
	return img.path
}

func (img *Image) destroy() {
	logrus.WithField("path", img.path).Debugln("Destroying image")
	img.orig.Destroy()
	img.source.Unlock()
	img.source = nil
}
