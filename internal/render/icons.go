package render

// Template names understood by the renderer.
const (
	IconFile        = "icon-file"
	IconFileAdded   = "icon-file-added"
	IconFileChanged = "icon-file-changed"
	IconFileDeleted = "icon-file-deleted"
	IconFileRenamed = "icon-file-renamed"
	TagFileAdded    = "tag-file-added"
	TagFileChanged  = "tag-file-changed"
	TagFileDeleted  = "tag-file-deleted"
	TagFileRenamed  = "tag-file-renamed"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="lucide `

const (
	svgFileText = svgOpen + `lucide-file-text"><path d="M14.5 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7.5L14.5 2z"></path><polyline points="14 2 14 8 20 8"></polyline><line x1="16" x2="8" y1="13" y2="13"></line><line x1="16" x2="8" y1="17" y2="17"></line><line x1="10" x2="8" y1="9" y2="9"></line></svg>`
	svgFilePlus = svgOpen + `lucide-file-plus"><path d="M14.5 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7.5L14.5 2z"></path><polyline points="14 2 14 8 20 8"></polyline><line x1="12" x2="12" y1="18" y2="12"></line><line x1="9" x2="15" y1="15" y2="15"></line></svg>`
	svgFileDiff = svgOpen + `lucide-file-diff"><path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"></path><path d="M9 10h6"></path><path d="M12 13V7"></path><path d="M9 17h6"></path></svg>`
	svgFileX = svgOpen + `lucide-file-x"><path d="M14.5 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7.5L14.5 2z"></path><polyline points="14 2 14 8 20 8"></polyline><line x1="9.5" x2="14.5" y1="12.5" y2="17.5"></line><line x1="14.5" x2="9.5" y1="12.5" y2="17.5"></line></svg>`
	svgFileSignature = svgOpen + `lucide-file-signature"><path d="M20 19.5v.5a2 2 0 0 1-2 2H6a2 2 0 0 1-2-2V4a2 2 0 0 1 2-2h8.5L18 5.5"></path><path d="M8 18h1"></path><path d="M18.42 9.61a2.1 2.1 0 1 1 2.97 2.97L16.95 17 13 18l.99-3.95 4.43-4.44Z"></path></svg>`
	svgPlus = svgOpen + `lucide-plus"><path d="M5 12h14"></path><path d="M12 5v14"></path></svg>`
	svgDiff = svgOpen + `lucide-diff"><path d="M12 3v14"></path><path d="M5 10h14"></path><path d="M5 21h14"></path></svg>`
	svgTrash = svgOpen + `lucide-trash-2"><path d="M3 6h18"></path><path d="M19 6v14c0 1-1 2-2 2H7c-1 0-2-1-2-2V6"></path><path d="M8 6V4c0-1 1-2 2-2h4c1 0 2 1 2 2v2"></path><line x1="10" x2="10" y1="11" y2="17"></line><line x1="14" x2="14" y1="11" y2="17"></line></svg>`
)

// DefaultTemplates returns a fresh copy of the built-in icon set.
func DefaultTemplates() map[string]string {
	return map[string]string{
		IconFile:        svgFileText,
		IconFileAdded:   svgFilePlus,
		IconFileChanged: svgFileDiff,
		IconFileDeleted: svgFileX,
		IconFileRenamed: svgFileSignature,
		TagFileAdded:    svgPlus,
		TagFileChanged:  svgDiff,
		TagFileDeleted:  svgTrash,
		TagFileRenamed:  svgFileSignature,
	}
}
